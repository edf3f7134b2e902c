package domain

import (
	"testing"
)

func TestParseEffects(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		effects := ParseEffects("heal:25")
		if len(effects) != 1 {
			t.Fatalf("Expected 1 effect, got %d", len(effects))
		}
		if effects[0].Kind != EffectHeal || effects[0].Value != 25 {
			t.Errorf("Expected heal:25, got %s:%d", effects[0].Kind, effects[0].Value)
		}
	})

	t.Run("Multiple", func(t *testing.T) {
		effects := ParseEffects("reveal_all_roles:1;loot_bonus:10")
		if len(effects) != 2 {
			t.Fatalf("Expected 2 effects, got %d", len(effects))
		}
		if effects[0].Kind != EffectRevealAllRoles {
			t.Errorf("Expected reveal_all_roles first, got %s", effects[0].Kind)
		}
		if effects[1].Kind != EffectLootBonus || effects[1].Value != 10 {
			t.Errorf("Expected loot_bonus:10, got %s:%d", effects[1].Kind, effects[1].Value)
		}
	})

	t.Run("UnknownTagSkipped", func(t *testing.T) {
		// Незнакомый тег не должен ломать остальные эффекты
		effects := ParseEffects("frobnicate:5;heal:10")
		if len(effects) != 1 {
			t.Fatalf("Expected 1 effect, got %d", len(effects))
		}
		if effects[0].Kind != EffectHeal {
			t.Errorf("Expected heal, got %s", effects[0].Kind)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if effects := ParseEffects(""); len(effects) != 0 {
			t.Errorf("Expected no effects, got %d", len(effects))
		}
	})

	t.Run("MissingValueDefaultsToOne", func(t *testing.T) {
		effects := ParseEffects("revive")
		if len(effects) != 1 || effects[0].Value != 1 {
			t.Errorf("Expected revive with default value 1, got %v", effects)
		}
	})
}

func TestLootItemHasEffect(t *testing.T) {
	item := NewLootItem("Перо феникса", "revive:1", RarityLegendary)

	if !item.HasEffect(EffectRevive) {
		t.Error("Expected item to have revive effect")
	}
	if item.HasEffect(EffectHeal) {
		t.Error("Expected item to not have heal effect")
	}
}
