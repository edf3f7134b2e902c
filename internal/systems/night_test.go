package systems

import (
	"math/rand"
	"testing"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
)

// twoRoomDungeon - минимальный коридор из двух комнат для юнит-тестов.
func twoRoomDungeon() *domain.Dungeon {
	r0 := &domain.Room{ID: 0, Type: domain.RoomStart, Links: map[domain.Direction]int{domain.DirEast: 1}, PlayersInRoom: map[string]bool{}}
	r1 := &domain.Room{ID: 1, Type: domain.RoomHall, Links: map[domain.Direction]int{domain.DirWest: 0}, PlayersInRoom: map[string]bool{}}
	return &domain.Dungeon{Width: 2, Height: 1, Rooms: []*domain.Room{r0, r1}, StartID: 0}
}

func placePlayer(d *domain.Dungeon, p *domain.Player, roomID int) {
	p.RoomID = roomID
	d.Rooms[roomID].PlayersInRoom[p.ID] = true
}

func TestNightKillers(t *testing.T) {
	roster := rosterForVoting(5, 2)
	roster[0].Alive = false // мертвый порченый не выходит на охоту

	killers := NightKillers(roster)
	if len(killers) != 1 {
		t.Fatalf("Expected 1 killer, got %d", len(killers))
	}
	if killers[0].ID != roster[1].ID {
		t.Errorf("Wrong killer selected: %s", killers[0].ID)
	}
}

func TestResolveMurder(t *testing.T) {
	t.Run("EmptyRoom", func(t *testing.T) {
		d := twoRoomDungeon()
		roster := rosterForVoting(3, 1)
		killer := roster[0]
		placePlayer(d, killer, 0)
		placePlayer(d, roster[1], 1) // жертва в другой комнате

		res := ResolveMurder(d, killer, roster, rand.New(rand.NewSource(1)))
		if res.Victim != nil {
			t.Errorf("Expected no victim in an empty room, got %s", res.Victim.ID)
		}
	})

	t.Run("CorruptedNeverTargeted", func(t *testing.T) {
		d := twoRoomDungeon()
		roster := rosterForVoting(3, 2)
		placePlayer(d, roster[0], 0)
		placePlayer(d, roster[1], 0) // второй порченый рядом

		res := ResolveMurder(d, roster[0], roster, rand.New(rand.NewSource(1)))
		if res.Victim != nil {
			t.Error("Corrupted must never pick each other")
		}
	})

	t.Run("KillRemovesVictim", func(t *testing.T) {
		d := twoRoomDungeon()
		roster := rosterForVoting(2, 1)
		killer, victim := roster[0], roster[1]
		placePlayer(d, killer, 0)
		placePlayer(d, victim, 0)

		// Ищем сид с удачным броском (70%)
		var res MurderResult
		for seed := int64(0); seed < 50; seed++ {
			victim.Alive = true
			victim.HP = victim.MaxHP
			d.Rooms[0].PlayersInRoom[victim.ID] = true

			res = ResolveMurder(d, killer, roster, rand.New(rand.NewSource(seed)))
			if res.Success {
				break
			}
		}
		if !res.Success {
			t.Fatal("No successful murder in 50 seeds, check MurderSuccessChance")
		}
		if res.Victim.Alive {
			t.Error("Expected victim dead")
		}
		if d.Rooms[0].PlayersInRoom[res.Victim.ID] {
			t.Error("Expected body removed from the room occupancy set")
		}
	})

	t.Run("ProtectionSaves", func(t *testing.T) {
		d := twoRoomDungeon()
		roster := rosterForVoting(2, 1)
		killer, victim := roster[0], roster[1]
		placePlayer(d, killer, 0)
		placePlayer(d, victim, 0)

		for seed := int64(0); seed < 50; seed++ {
			victim.Protection = 1
			res := ResolveMurder(d, killer, roster, rand.New(rand.NewSource(seed)))
			if res.Success {
				if !res.Survived {
					t.Fatal("Expected protection charge to save the victim")
				}
				if !victim.Alive {
					t.Error("Saved victim must stay alive")
				}
				if victim.Protection != 0 {
					t.Error("Expected protection charge consumed")
				}
				return
			}
		}
		t.Fatal("No successful murder roll in 50 seeds")
	})
}
