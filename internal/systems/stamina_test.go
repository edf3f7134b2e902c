package systems

import (
	"testing"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
)

func playerWithAgility(agi int) *domain.Player {
	class := domain.CharacterClass{
		Name:  "Test",
		Stats: domain.StatBlock{Strength: 5, Vitality: 5, Agility: agi, Intelligence: 5, Wisdom: 5},
	}
	return domain.NewPlayer("t1", "Тестовый", class, false)
}

func TestActionCost(t *testing.T) {
	t.Run("NoAgility", func(t *testing.T) {
		p := playerWithAgility(0)
		if got := ActionCost(domain.BaseCostMove, p); got != 10 {
			t.Errorf("Expected cost 10, got %d", got)
		}
	})

	t.Run("RogueDiscount", func(t *testing.T) {
		// agi=10 -> скидка ровно на капе 50%
		p := playerWithAgility(10)
		if got := ActionCost(domain.BaseCostMove, p); got != 5 {
			t.Errorf("Expected cost 5 at agility 10, got %d", got)
		}
	})

	t.Run("DiscountCapped", func(t *testing.T) {
		// Скидка не растет выше 50% даже при безумной ловкости
		p := playerWithAgility(100)
		if got := ActionCost(domain.BaseCostMove, p); got != 5 {
			t.Errorf("Expected capped cost 5, got %d", got)
		}
	})

	t.Run("NeverFree", func(t *testing.T) {
		p := playerWithAgility(100)
		if got := ActionCost(domain.CostWait, p); got != 1 {
			t.Errorf("Expected minimum cost 1, got %d", got)
		}
	})
}

func TestSpendClampsAtZero(t *testing.T) {
	p := playerWithAgility(5)
	p.Stamina = 3

	Spend(p, 10)
	if p.Stamina != 0 {
		t.Errorf("Expected stamina clamped to 0, got %d", p.Stamina)
	}
}

func TestRefill(t *testing.T) {
	p := playerWithAgility(5)
	p.Stamina = 0

	Refill(p)
	if p.Stamina != p.MaxStamina() {
		t.Errorf("Expected stamina %d after refill, got %d", p.MaxStamina(), p.Stamina)
	}
}

func TestMaxStaminaScalesWithVitality(t *testing.T) {
	for _, tc := range []struct{ vit, want int }{{5, 25}, {10, 50}} {
		class := domain.CharacterClass{Stats: domain.StatBlock{Vitality: tc.vit}}
		p := domain.NewPlayer("t", "t", class, false)
		if p.MaxStamina() != tc.want {
			t.Errorf("vitality %d: expected max stamina %d, got %d", tc.vit, tc.want, p.MaxStamina())
		}
	}
}

func TestAllExhausted(t *testing.T) {
	a := playerWithAgility(5)
	b := playerWithAgility(5)
	roster := []*domain.Player{a, b}

	if AllExhausted(roster) {
		t.Error("Fresh roster must not be exhausted")
	}

	a.Stamina = 0
	if AllExhausted(roster) {
		t.Error("One player still has stamina")
	}

	b.Stamina = 0
	if !AllExhausted(roster) {
		t.Error("Expected exhausted when everyone is at 0")
	}

	// Мертвые и сбежавшие не учитываются
	b.Stamina = 30
	b.Alive = false
	if !AllExhausted(roster) {
		t.Error("Dead player's stamina must not block the night")
	}

	// Пустой (все вне игры) список - ночь не наступает
	a.Escaped = true
	if AllExhausted(roster) {
		t.Error("Expected false when nobody is in game")
	}
}
