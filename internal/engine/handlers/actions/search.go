package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/internal/systems"
)

// HandleSearch обрабатывает обыск комнаты. Силы тратятся независимо
// от результата. Для порченого ночью обыск - неявный "пас",
// завершающий ночную фазу.
func HandleSearch(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.InGame() {
		return handlers.Result{Msg: "Мертвые ничего не ищут.", MsgType: "ERROR"}, nil
	}

	nightKiller := s.Phase() == domain.PhaseNight && actor.Role == domain.RoleCorrupted
	if s.Phase() != domain.PhaseExploration && !nightKiller {
		return handlers.Result{Msg: "Сейчас не время для обыска.", MsgType: "ERROR"}, nil
	}

	room := s.Dungeon().Room(actor.RoomID)
	if room == nil {
		return handlers.Result{Msg: "Комната не найдена.", MsgType: "ERROR"}, nil
	}

	// Обыск стоит сил и ночью тоже - бесплатно только перемещение.
	cost := systems.ActionCost(domain.BaseCostSearch, actor)
	if !systems.HasStamina(actor, cost) {
		return handlers.Result{Msg: "Не хватает сил на обыск.", MsgType: "ERROR"}, nil
	}

	actor.LastAction = domain.ActionSearch.String()
	s.SpendStamina(actor, cost)

	msg := fmt.Sprintf("%s обыскивает комнату, но не находит ничего ценного.", actor.Name)

	// Добыча тянется из таблицы по типу комнаты: в сокровищнице
	// лежит не то же самое, что в пустом зале.
	item, found := systems.SearchYield(ctx.Rng, s.SearchLoot(room.Type), actor)
	if found {
		actor.AddItem(item)
		msg = fmt.Sprintf("%s находит: %s.", actor.Name, item.Name)
	}

	if nightKiller {
		// Находку видит только сам порченый: общая запись с его
		// именем выдала бы роль всему отряду. Сообщение до EndNight:
		// рассвет в хронике идет после обыска.
		s.AddPrivateLog(actor.ID, msg, "NIGHT")
		s.EndNight()
		return handlers.EmptyResult(), nil
	}

	return handlers.Result{Msg: msg, MsgType: "INFO", Rooms: []int{room.ID}}, nil
}
