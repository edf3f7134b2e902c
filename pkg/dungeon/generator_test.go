package dungeon

import (
	"math/rand"
	"os"
	"testing"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestGenerateConnectivity(t *testing.T) {
	// Связность обязана держаться на любом сиде
	for seed := int64(0); seed < 100; seed++ {
		d := GenerateDefault(rand.New(rand.NewSource(seed)))
		if !FullyConnected(d) {
			t.Fatalf("Seed %d produced a disconnected dungeon", seed)
		}
	}
}

func TestGenerateSpecialRooms(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		d := GenerateDefault(rand.New(rand.NewSource(seed)))

		counts := map[domain.RoomType]int{}
		for _, room := range d.Rooms {
			counts[room.Type]++
		}
		for _, rt := range []domain.RoomType{domain.RoomStart, domain.RoomKey, domain.RoomPortal, domain.RoomBoss} {
			if counts[rt] != 1 {
				t.Fatalf("Seed %d: expected exactly one %s room, got %d", seed, rt, counts[rt])
			}
		}

		for _, id := range []int{d.KeyID, d.PortalID, d.BossID} {
			if id == d.StartID {
				t.Fatalf("Seed %d: special room placed in the start room", seed)
			}
		}

		boss := d.Room(d.BossID)
		if boss.Monster == nil || !boss.Monster.Alive || !boss.Monster.IsBoss {
			t.Fatalf("Seed %d: boss room has no living boss", seed)
		}
	}
}

func TestGenerateGridLinks(t *testing.T) {
	d := GenerateDefault(rand.New(rand.NewSource(1)))

	if len(d.Rooms) != DefaultWidth*DefaultHeight {
		t.Fatalf("Expected %d rooms, got %d", DefaultWidth*DefaultHeight, len(d.Rooms))
	}

	for _, room := range d.Rooms {
		// Углы: 2 выхода, края: 3, середина: 4
		expected := 4
		if room.X == 0 || room.X == d.Width-1 {
			expected--
		}
		if room.Y == 0 || room.Y == d.Height-1 {
			expected--
		}
		if len(room.Links) != expected {
			t.Errorf("Room %d at (%d,%d): expected %d exits, got %d", room.ID, room.X, room.Y, expected, len(room.Links))
		}

		// Каждая связь симметрична
		for dir, to := range room.Links {
			if !d.IsAdjacent(to, room.ID) {
				t.Errorf("Link %d -%s-> %d has no reverse link", room.ID, dir, to)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := GenerateDefault(rand.New(rand.NewSource(99)))
	b := GenerateDefault(rand.New(rand.NewSource(99)))

	if a.StartID != b.StartID || a.KeyID != b.KeyID || a.PortalID != b.PortalID || a.BossID != b.BossID {
		t.Error("Same seed must produce identical special room placement")
	}
	for i := range a.Rooms {
		if a.Rooms[i].Type != b.Rooms[i].Type {
			t.Errorf("Room %d type differs between identical seeds", i)
		}
	}
}

func TestGenerateRejectsDegenerateSize(t *testing.T) {
	d := Generate(1, 1, rand.New(rand.NewSource(2)))
	if d.Width != DefaultWidth || d.Height != DefaultHeight {
		t.Errorf("Expected fallback to default grid, got %dx%d", d.Width, d.Height)
	}
}

func TestLootPool(t *testing.T) {
	pool := LootPool()
	if len(pool) == 0 {
		t.Fatal("Loot pool is empty")
	}

	seen := map[string]bool{}
	for _, item := range pool {
		if seen[item.Name] {
			t.Errorf("Duplicate item %q in loot pool", item.Name)
		}
		seen[item.Name] = true
	}

	// Перо феникса обязано нести revive - от него зависит ночная логика
	for _, item := range pool {
		if item.HasEffect(domain.EffectRevive) {
			return
		}
	}
	t.Error("Loot pool has no revive item")
}

func TestSearchLootByRoomType(t *testing.T) {
	tabled := []domain.RoomType{
		domain.RoomTreasure, domain.RoomMonster, domain.RoomBoss,
		domain.RoomTrap, domain.RoomEmpty, domain.RoomHall,
	}
	for _, rt := range tabled {
		table := SearchLoot(rt)
		if len(table) == 0 {
			t.Errorf("Room type %q has an empty search table", rt)
		}
		for _, item := range table {
			if len(item.Effects) == 0 {
				t.Errorf("Room type %q: item %q parsed without effects", rt, item.Name)
			}
		}
	}

	// Сокровищница и ловушечная комната дают разную добычу
	names := func(items []domain.LootItem) map[string]bool {
		set := map[string]bool{}
		for _, it := range items {
			set[it.Name] = true
		}
		return set
	}
	treasure := names(SearchLoot(domain.RoomTreasure))
	for name := range names(SearchLoot(domain.RoomTrap)) {
		if treasure[name] {
			t.Errorf("Item %q appears in both treasure and trap tables", name)
		}
	}

	// Типы без собственной таблицы падают на базовый пул
	base := names(LootPool())
	for _, rt := range []domain.RoomType{domain.RoomStart, domain.RoomKey, domain.RoomPortal} {
		got := names(SearchLoot(rt))
		if len(got) != len(base) {
			t.Errorf("Room type %q must fall back to the base pool", rt)
			continue
		}
		for name := range base {
			if !got[name] {
				t.Errorf("Room type %q fallback lacks %q", rt, name)
			}
		}
	}
}
