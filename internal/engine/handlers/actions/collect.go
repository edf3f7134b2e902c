package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/internal/systems"
)

// HandleCollect - вскрытие сокровищницы. Одноразовое: комната
// помечается зачищенной.
func HandleCollect(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.InGame() || s.Phase() != domain.PhaseExploration {
		return handlers.Result{Msg: "Сейчас нельзя собирать сокровища.", MsgType: "ERROR"}, nil
	}

	room := s.Dungeon().Room(actor.RoomID)
	if room == nil || room.Type != domain.RoomTreasure || room.Cleared {
		return handlers.Result{Msg: "Здесь нет нетронутых сокровищ.", MsgType: "ERROR"}, nil
	}

	room.Cleared = true
	actor.LastAction = domain.ActionCollect.String()

	draws := systems.TreasureDraws(ctx.Rng)
	msg := fmt.Sprintf("%s вскрывает сундук.", actor.Name)
	for i := 0; i < draws; i++ {
		item := systems.RollLoot(ctx.Rng, s.LootPool(), actor.LootBonus)
		actor.AddItem(item)
		msg += fmt.Sprintf(" Внутри: %s.", item.Name)
	}

	return handlers.Result{Msg: msg, MsgType: "INFO", Rooms: []int{room.ID}}, nil
}
