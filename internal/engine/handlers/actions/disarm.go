package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/internal/systems"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
)

// HandleDisarm - разминирование ловушки. Шанс уворота растет
// с ловкостью; провал съедает заряд защиты, а без него игрок
// с шансом 50% роняет случайный предмет.
func HandleDisarm(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.InGame() || s.Phase() != domain.PhaseExploration {
		return handlers.Result{Msg: "Сейчас не до ловушек.", MsgType: "ERROR"}, nil
	}

	room := s.Dungeon().Room(actor.RoomID)
	if room == nil || room.Type != domain.RoomTrap || room.Cleared {
		return handlers.Result{Msg: "Здесь нет взведенных ловушек.", MsgType: "ERROR"}, nil
	}

	room.Cleared = true
	actor.LastAction = domain.ActionDisarm.String()

	if utils.Chance(ctx.Rng, systems.TrapAvoidChance(actor)) {
		item := systems.RollLoot(ctx.Rng, s.LootPool(), actor.LootBonus)
		actor.AddItem(item)
		return handlers.Result{
			Msg:     fmt.Sprintf("%s ловко обезвреживает ловушку и находит: %s.", actor.Name, item.Name),
			MsgType: "INFO",
			Rooms:   []int{room.ID},
		}, nil
	}

	// Дымовая шашка или свиток побега спасают от сработавшей
	// ловушки раньше амулета и расходуются при этом.
	if actor.CanEscape {
		actor.CanEscape = false
		return handlers.Result{
			Msg:     fmt.Sprintf("Ловушка срабатывает, но %s успевает отскочить в дымовую завесу.", actor.Name),
			MsgType: "INFO",
			Rooms:   []int{room.ID},
		}, nil
	}

	if actor.Protection > 0 {
		actor.Protection--
		return handlers.Result{
			Msg:     fmt.Sprintf("Ловушка срабатывает, но амулет защищает %s.", actor.Name),
			MsgType: "INFO",
			Rooms:   []int{room.ID},
		}, nil
	}

	if len(actor.Inventory) > 0 && utils.Chance(ctx.Rng, 0.5) {
		idx := ctx.Rng.Intn(len(actor.Inventory))
		dropped, _ := actor.RemoveItemAt(idx)
		return handlers.Result{
			Msg:     fmt.Sprintf("Ловушка срабатывает! %s роняет %s.", actor.Name, dropped.Name),
			MsgType: "INFO",
			Rooms:   []int{room.ID},
		}, nil
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Ловушка срабатывает, но %s отделывается испугом.", actor.Name),
		MsgType: "INFO",
		Rooms:   []int{room.ID},
	}, nil
}
