package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
)

// HandleWait - пропуск действия за 1 единицу сил.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor

	if !actor.InGame() || ctx.Session.Phase() != domain.PhaseExploration {
		return handlers.EmptyResult(), nil
	}

	actor.LastAction = domain.ActionWait.String()
	ctx.Session.SpendStamina(actor, domain.CostWait)

	return handlers.Result{
		Msg:     fmt.Sprintf("%s осматривается и переводит дух.", actor.Name),
		MsgType: "INFO",
		Rooms:   []int{actor.RoomID},
	}, nil
}

// HandleInit - пустая команда, триггерящая первую отправку снимка.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
