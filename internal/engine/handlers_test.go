package engine

import (
	"testing"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/dungeon"
)

func TestFightKillYieldsLoot(t *testing.T) {
	roster := testRoster(4, 1)
	gs, _ := newTestSession(t, roster, 19)
	gs.phase = domain.PhaseExploration

	actor := roster[1]
	room := gs.dungeon.Room(actor.RoomID)
	room.Monster = &domain.Monster{Name: "Гуль", HP: 5, MaxHP: 5, Damage: 10, LootCount: 2, Alive: true}

	gs.Execute(domain.InternalCommand{Action: domain.ActionFight, Token: actor.ID})

	if room.Monster.Alive {
		t.Fatal("A 5 HP monster must die from any hit")
	}
	if !room.Cleared {
		t.Error("Room must be cleared after the kill")
	}
	if len(actor.Inventory) != 2 {
		t.Errorf("Expected 2 loot items, got %d", len(actor.Inventory))
	}

	// Мертвого монстра бить не с кем
	items := len(actor.Inventory)
	gs.Execute(domain.InternalCommand{Action: domain.ActionFight, Token: actor.ID})
	if len(actor.Inventory) != items {
		t.Error("Fighting a dead monster must yield nothing")
	}
}

func TestCollectIsSingleShot(t *testing.T) {
	roster := testRoster(4, 1)
	gs, _ := newTestSession(t, roster, 23)
	gs.phase = domain.PhaseExploration

	actor := roster[1]
	room := gs.dungeon.Room(actor.RoomID)
	room.Type = domain.RoomTreasure
	room.Monster = nil

	gs.Execute(domain.InternalCommand{Action: domain.ActionCollect, Token: actor.ID})
	got := len(actor.Inventory)
	if got < 1 || got > 3 {
		t.Errorf("Expected 1-3 items from a chest, got %d", got)
	}
	if !room.Cleared {
		t.Error("Chest room must be marked cleared")
	}

	gs.Execute(domain.InternalCommand{Action: domain.ActionCollect, Token: actor.ID})
	if len(actor.Inventory) != got {
		t.Error("Second collect must yield nothing")
	}
}

func TestDisarmClearsTrap(t *testing.T) {
	roster := testRoster(4, 1)
	gs, _ := newTestSession(t, roster, 29)
	gs.phase = domain.PhaseExploration

	actor := roster[1]
	room := gs.dungeon.Room(actor.RoomID)
	room.Type = domain.RoomTrap
	room.Monster = nil

	gs.Execute(domain.InternalCommand{Action: domain.ActionDisarm, Token: actor.ID})
	if !room.Cleared {
		t.Error("Trap must be spent after one attempt, successful or not")
	}

	before := len(actor.Inventory)
	gs.Execute(domain.InternalCommand{Action: domain.ActionDisarm, Token: actor.ID})
	if len(actor.Inventory) != before {
		t.Error("A cleared trap must not be disarmable again")
	}
}

func TestWaitSpendsOneStamina(t *testing.T) {
	roster := testRoster(4, 1)
	gs, _ := newTestSession(t, roster, 37)
	gs.phase = domain.PhaseExploration

	actor := roster[1]
	before := actor.Stamina
	gs.Execute(domain.InternalCommand{Action: domain.ActionWait, Token: actor.ID})

	if actor.Stamina != before-1 {
		t.Errorf("Expected stamina %d after wait, got %d", before-1, actor.Stamina)
	}
}

func TestSearchDrawsFromRoomTypeTable(t *testing.T) {
	roster := testRoster(4, 1)
	gs, _ := newTestSession(t, roster, 41)
	gs.phase = domain.PhaseExploration

	actor := roster[1]
	room := gs.dungeon.Room(actor.RoomID)
	room.Type = domain.RoomTreasure
	room.Monster = nil

	allowed := map[string]bool{}
	for _, item := range dungeon.SearchLoot(domain.RoomTreasure) {
		allowed[item.Name] = true
	}

	// 35% на находку: добиваем бросками, силы пополняем между ними
	for i := 0; i < 200 && len(actor.Inventory) == 0; i++ {
		actor.Stamina = actor.MaxStamina()
		gs.Execute(domain.InternalCommand{Action: domain.ActionSearch, Token: actor.ID})
	}

	if len(actor.Inventory) == 0 {
		t.Fatal("No loot found in 200 searches of a treasure room")
	}
	if name := actor.Inventory[0].Name; !allowed[name] {
		t.Errorf("Treasure room search yielded %q, not from the treasure table", name)
	}
}

func TestDisarmConsumesEscapeEffect(t *testing.T) {
	// Перебираем сиды до сработавшей ловушки
	for seed := int64(1); seed < 60; seed++ {
		roster := testRoster(4, 1)
		gs, _ := newTestSession(t, roster, seed)
		gs.phase = domain.PhaseExploration

		actor := roster[1]
		actor.CanEscape = true
		actor.AddItem(domain.NewLootItem("Лечебный эликсир", "heal:15", domain.RarityCommon))
		room := gs.dungeon.Room(actor.RoomID)
		room.Type = domain.RoomTrap
		room.Monster = nil

		gs.Execute(domain.InternalCommand{Action: domain.ActionDisarm, Token: actor.ID})

		if len(actor.Inventory) == 2 {
			// Уворот удался, ловушка не сработала - другой сид
			continue
		}

		if actor.CanEscape {
			t.Fatalf("Seed %d: escape effect must be consumed by a triggered trap", seed)
		}
		if len(actor.Inventory) != 1 {
			t.Fatalf("Seed %d: fleeing the trap must not drop items, inventory %d", seed, len(actor.Inventory))
		}
		return
	}
	t.Fatal("No triggered trap in 60 seeds")
}
