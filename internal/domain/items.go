package domain

import (
	"strconv"
	"strings"
)

// Rarity - редкость предмета.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// EffectKind - тип эффекта предмета.
// Раньше эффекты жили в строках вида "heal:10;survive_attack:1",
// теперь это тегированный вариант с явным значением.
type EffectKind uint8

const (
	EffectUnknown EffectKind = iota
	EffectHeal
	EffectSurviveAttack
	EffectBlockAttacks
	EffectRevealRole
	EffectRevealAllRoles
	EffectLootBonus
	EffectEscapeDanger
	EffectInstantFlee
	EffectAttackPower
	EffectRevive
)

var effectKindNames = map[EffectKind]string{
	EffectHeal:           "heal",
	EffectSurviveAttack:  "survive_attack",
	EffectBlockAttacks:   "block_attacks",
	EffectRevealRole:     "reveal_role",
	EffectRevealAllRoles: "reveal_all_roles",
	EffectLootBonus:      "loot_bonus",
	EffectEscapeDanger:   "escape_danger",
	EffectInstantFlee:    "instant_flee",
	EffectAttackPower:    "attack_power",
	EffectRevive:         "revive",
}

var effectNameKinds = map[string]EffectKind{}

func init() {
	for k, name := range effectKindNames {
		effectNameKinds[name] = k
	}
}

func (k EffectKind) String() string {
	if s, ok := effectKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ItemEffect - один эффект предмета. Value интерпретируется по типу:
// для heal это HP, для survive_attack/block_attacks - число зарядов,
// для loot_bonus - проценты, для остальных игнорируется.
type ItemEffect struct {
	Kind  EffectKind `json:"kind"`
	Value int        `json:"value,omitempty"`
}

// ParseEffects разбирает шаблонную строку "tag:value;tag:value".
// Неизвестные теги молча пропускаются, пропущенное значение = 1.
func ParseEffects(raw string) []ItemEffect {
	if raw == "" {
		return nil
	}

	var effects []ItemEffect
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, valStr, _ := strings.Cut(part, ":")
		kind, ok := effectNameKinds[strings.TrimSpace(tag)]
		if !ok {
			continue
		}

		value := 1
		if v, err := strconv.Atoi(strings.TrimSpace(valStr)); err == nil {
			value = v
		}

		effects = append(effects, ItemEffect{Kind: kind, Value: value})
	}
	return effects
}

// LootItem - предмет. Неизменяемое значение, свободно копируется
// между инвентарем и тайником.
type LootItem struct {
	Name    string       `json:"name"`
	Effects []ItemEffect `json:"effects,omitempty"`
	Rarity  Rarity       `json:"rarity"`
}

// NewLootItem создает предмет из шаблонной строки эффектов.
func NewLootItem(name, effectTemplate string, rarity Rarity) LootItem {
	return LootItem{
		Name:    name,
		Effects: ParseEffects(effectTemplate),
		Rarity:  rarity,
	}
}

// HasEffect сообщает, несет ли предмет эффект данного типа.
func (it LootItem) HasEffect(kind EffectKind) bool {
	for _, e := range it.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
