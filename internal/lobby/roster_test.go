package lobby

import (
	"math/rand"
	"testing"
)

func TestBuildRoster(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	entries := []Entry{
		{UserID: "u1", Username: "Алиса"},
		{UserID: "u2", Username: "Боб"},
	}

	roster := BuildRoster(entries, 6, rng)

	if len(roster) != 6 {
		t.Fatalf("Expected roster of 6, got %d", len(roster))
	}

	humans := 0
	ids := map[string]bool{}
	for _, p := range roster {
		if ids[p.ID] {
			t.Errorf("Duplicate player ID %s", p.ID)
		}
		ids[p.ID] = true
		if p.IsHuman {
			humans++
		}
		if p.Class == "" || p.Name == "" {
			t.Errorf("Player %s missing class or name", p.ID)
		}
	}
	if humans != 2 {
		t.Errorf("Expected 2 humans, got %d", humans)
	}

	// Реальные игроки идут первыми и сохраняют свои id
	if roster[0].ID != "u1" || roster[1].ID != "u2" {
		t.Error("Human entries must keep their user IDs")
	}
}

func TestBuildRosterNoFill(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	entries := []Entry{{UserID: "u1", Username: "Соло"}}

	roster := BuildRoster(entries, 1, rng)
	if len(roster) != 1 || !roster[0].IsHuman {
		t.Errorf("Expected a single human roster, got %d players", len(roster))
	}
}

func TestBuildRosterManyAI(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// fillTo больше числа заготовленных имен - добиваем нумерованными
	roster := BuildRoster(nil, 15, rng)
	if len(roster) != 15 {
		t.Fatalf("Expected 15 players, got %d", len(roster))
	}
	for _, p := range roster {
		if p.IsHuman {
			t.Error("Expected an all-AI roster")
		}
	}
}
