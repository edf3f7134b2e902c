package systems

import (
	"math/rand"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
)

// AIDecision - выбранное ИИ действие.
type AIDecision struct {
	Action    domain.ActionType
	Direction domain.Direction // только для ActionMove
}

// DecideAction строит множество доступных по запасу сил действий
// и выбирает одно равновероятно. Если не хватает даже на обыск,
// остается ожидание за 1 единицу.
func DecideAction(d *domain.Dungeon, p *domain.Player, rng *rand.Rand) AIDecision {
	var options []AIDecision

	room := d.Room(p.RoomID)
	if room != nil && HasStamina(p, ActionCost(domain.BaseCostMove, p)) {
		for dir := range room.Links {
			options = append(options, AIDecision{Action: domain.ActionMove, Direction: dir})
		}
	}

	if HasStamina(p, ActionCost(domain.BaseCostSearch, p)) {
		options = append(options, AIDecision{Action: domain.ActionSearch})
	}

	if len(options) == 0 {
		return AIDecision{Action: domain.ActionWait}
	}
	return utils.Pick(rng, options)
}

// EligibleAI - живые не сбежавшие ИИ-игроки с ненулевым запасом сил.
func EligibleAI(roster []*domain.Player) []*domain.Player {
	var out []*domain.Player
	for _, p := range roster {
		if !p.IsHuman && p.InGame() && p.Stamina > 0 {
			out = append(out, p)
		}
	}
	return out
}
