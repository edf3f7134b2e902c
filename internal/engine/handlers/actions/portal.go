package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
)

// HandleTakeKey - подбор портального ключа в комнате-ключе.
func HandleTakeKey(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.InGame() || s.Phase() != domain.PhaseExploration {
		return handlers.Result{Msg: "Сейчас нельзя взять ключ.", MsgType: "ERROR"}, nil
	}

	d := s.Dungeon()
	room := d.Room(actor.RoomID)
	if room == nil || room.ID != d.KeyID {
		return handlers.Result{Msg: "Здесь нет портального ключа.", MsgType: "ERROR"}, nil
	}
	if room.KeyTaken {
		return handlers.Result{Msg: "Ключ уже кто-то забрал.", MsgType: "ERROR"}, nil
	}

	room.KeyTaken = true
	s.SetKeyHolder(actor.ID)
	actor.LastAction = domain.ActionTakeKey.String()

	// Кто взял ключ - знают только очевидцы: чужой HasKey в снимки
	// не попадает, журнал не должен выдавать его за них.
	return handlers.Result{
		Msg:     fmt.Sprintf("%s забирает портальный ключ!", actor.Name),
		MsgType: "INFO",
		Rooms:   []int{room.ID},
	}, nil
}

// HandleEscape - побег через портал. Требует стоять в портальной
// комнате и держать ключ. Идемпотентен: без ключа - ничего не
// меняется, повторный вызов после побега - тоже.
func HandleEscape(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.Alive || actor.Escaped {
		return handlers.EmptyResult(), nil
	}
	if s.Phase() != domain.PhaseExploration {
		return handlers.Result{Msg: "Портал сейчас закрыт.", MsgType: "ERROR"}, nil
	}

	d := s.Dungeon()
	if actor.RoomID != d.PortalID {
		return handlers.Result{Msg: "Портал находится в другой комнате.", MsgType: "ERROR"}, nil
	}
	if s.KeyHolder() != actor.ID {
		return handlers.Result{Msg: "Без портального ключа портал не откроется.", MsgType: "ERROR"}, nil
	}

	// Весь текущий инвентарь уходит в тайник ровно один раз.
	actor.Stash = append(actor.Stash, actor.Inventory...)
	actor.Inventory = []domain.LootItem{}
	actor.Escaped = true
	actor.LastAction = domain.ActionEscape.String()

	if room := d.Room(actor.RoomID); room != nil {
		delete(room.PlayersInRoom, actor.ID)
	}

	s.CheckWin()

	return handlers.Result{
		Msg:     fmt.Sprintf("%s исчезает в портале, унося добычу!", actor.Name),
		MsgType: "INFO",
	}, nil
}
