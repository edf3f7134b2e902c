package systems

import (
	"math/rand"
	"testing"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
)

func TestDecideAction(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	t.Run("OnlyAffordable", func(t *testing.T) {
		d := twoRoomDungeon()
		p := playerWithAgility(0)
		placePlayer(d, p, 0)
		p.Stamina = 7 // хватает на обыск (5), но не на переход (10)

		for i := 0; i < 100; i++ {
			dec := DecideAction(d, p, rng)
			if dec.Action == domain.ActionMove {
				t.Fatal("AI picked a move it cannot afford")
			}
		}
	})

	t.Run("WaitFallback", func(t *testing.T) {
		d := twoRoomDungeon()
		p := playerWithAgility(0)
		placePlayer(d, p, 0)
		p.Stamina = 2 // не хватает ни на что, кроме ожидания

		dec := DecideAction(d, p, rng)
		if dec.Action != domain.ActionWait {
			t.Errorf("Expected wait fallback, got %s", dec.Action)
		}
	})

	t.Run("MoveDirectionIsOpen", func(t *testing.T) {
		d := twoRoomDungeon()
		p := playerWithAgility(0)
		placePlayer(d, p, 0)
		p.Stamina = p.MaxStamina()

		for i := 0; i < 100; i++ {
			dec := DecideAction(d, p, rng)
			if dec.Action != domain.ActionMove {
				continue
			}
			if _, ok := d.Rooms[0].Links[dec.Direction]; !ok {
				t.Fatalf("AI picked a closed direction %s", dec.Direction)
			}
		}
	})
}

func TestEligibleAI(t *testing.T) {
	roster := rosterForVoting(4, 1)
	roster[0].IsHuman = true
	roster[1].Alive = false
	roster[2].Stamina = 0

	out := EligibleAI(roster)
	if len(out) != 1 || out[0].ID != roster[3].ID {
		t.Errorf("Expected only the last player eligible, got %d", len(out))
	}
}
