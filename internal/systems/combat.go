package systems

import (
	"math"
	"math/rand"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/logger"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
	"github.com/sirupsen/logrus"
)

// CombatLevel - свертка пяти характеристик в один боевой уровень.
func CombatLevel(s domain.StatBlock) int {
	level := int(math.Floor(
		float64(s.Strength)*0.3 +
			float64(s.Intelligence)*0.2 +
			float64(s.Agility)*0.2 +
			float64(s.Vitality)*0.15 +
			float64(s.Wisdom)*0.15,
	))
	if level < 1 {
		level = 1
	}
	return level
}

// PlayerDamage - урон игрока за один обмен ударами.
func PlayerDamage(p *domain.Player, rng *rand.Rand) int {
	base := utils.RandRange(rng, 10, 20)
	return base + int(math.Floor(float64(CombatLevel(p.Stats))*1.5)) + p.AttackBonus
}

// RetaliationDamage - ответный урон монстра со смягчением за vitality.
// Смягчение капится на 50%, минимум 1 урона проходит всегда.
func RetaliationDamage(m *domain.Monster, p *domain.Player) int {
	mitigation := float64(p.Stats.Vitality) / 100
	if mitigation > 0.5 {
		mitigation = 0.5
	}
	dmg := int(math.Floor(float64(m.Damage) * (1 - mitigation)))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// AttackResult - итог одного обмена ударами.
type AttackResult struct {
	DamageDealt    int
	MonsterHP      int // после удара, не ниже 0
	MonsterKilled  bool
	Retaliation    int  // 0, если монстр погиб или удар поглощен
	FledUsed       bool // от ответа спас одноразовый эффект побега
	ProtectionUsed bool // атака поглощена зарядом защиты
	ReviveUsed     bool
	PlayerDied     bool
}

// ResolveAttack проводит один обмен ударами игрока с монстром.
// Монстр бьет в ответ, только если пережил удар. Одноразовый эффект
// побега расходуется раньше зарядов защиты, заряды поглощают ответ
// один-к-одному, перо феникса срабатывает один раз.
func ResolveAttack(p *domain.Player, m *domain.Monster, rng *rand.Rand) AttackResult {
	res := AttackResult{}

	res.DamageDealt = PlayerDamage(p, rng)
	m.HP -= res.DamageDealt
	if m.HP <= 0 {
		// В журнал и снимки HP никогда не уходит отрицательным.
		m.HP = 0
		m.Alive = false
		res.MonsterKilled = true
	}
	res.MonsterHP = m.HP

	if res.MonsterKilled {
		return res
	}

	if p.CanEscape {
		p.CanEscape = false
		res.FledUsed = true
		return res
	}

	if p.Protection > 0 {
		p.Protection--
		res.ProtectionUsed = true
		return res
	}

	res.Retaliation = RetaliationDamage(m, p)
	if p.TakeDamage(res.Retaliation) {
		if p.HasRevive {
			p.HasRevive = false
			p.Alive = true
			p.HP = p.MaxHP / 2
			res.ReviveUsed = true
		} else {
			res.PlayerDied = true
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":   "combat",
		"player":      p.Name,
		"monster":     m.Name,
		"dealt":       res.DamageDealt,
		"retaliation": res.Retaliation,
		"monster_hp":  res.MonsterHP,
	}).Debug("Attack resolved")

	return res
}
