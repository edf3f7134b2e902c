package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/internal/systems"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
)

// HandleMove обрабатывает переход между комнатами.
// Ночью порченый перемещается бесплатно, днем движение стоит сил.
func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.InGame() {
		return handlers.Result{Msg: "Мертвые не ходят по подземелью.", MsgType: "ERROR"}, nil
	}

	nightKiller := s.Phase() == domain.PhaseNight && actor.Role == domain.RoleCorrupted
	if s.Phase() != domain.PhaseExploration && !nightKiller {
		return handlers.Result{Msg: "Сейчас не время для перемещений.", MsgType: "ERROR"}, nil
	}

	dir, ok := domain.ParseDirection(p.Direction)
	if !ok {
		return handlers.Result{Msg: "Неизвестное направление.", MsgType: "ERROR"}, nil
	}

	res := systems.CalculateMove(s.Dungeon(), actor, dir)
	if !res.OK {
		return handlers.Result{Msg: res.Reason, MsgType: "ERROR"}, nil
	}

	cost := 0
	if !nightKiller {
		cost = systems.ActionCost(domain.BaseCostMove, actor)
		if !systems.HasStamina(actor, cost) {
			return handlers.Result{Msg: "Не хватает сил на переход.", MsgType: "ERROR"}, nil
		}
	}

	from := actor.RoomID
	s.Dungeon().MovePlayer(actor.ID, from, res.To)
	actor.RoomID = res.To
	actor.MarkExplored(res.To)
	actor.LastAction = domain.ActionMove.String()

	if nightKiller {
		s.NoteSuspicious(actor, "перемещался в темноте")
	} else {
		// Списание идет ПОСЛЕ перестановки: если этот шаг выжал
		// последние силы, ночь застанет игрока уже в новой комнате.
		s.SpendStamina(actor, cost)
	}

	room := s.Dungeon().Room(res.To)
	msg := fmt.Sprintf("%s переходит в комнату «%s».", actor.Name, room.Name)

	// Шум из соседних комнат - улика для дедукции.
	for _, noisyID := range systems.NoiseRooms(s.Dungeon(), res.To, ctx.Rng) {
		noisy := s.Dungeon().Room(noisyID)
		s.AddEvidence(domain.Evidence{
			Type:        "noise",
			Description: fmt.Sprintf("Из комнаты «%s» доносятся голоса.", noisy.Name),
			Round:       s.Round(),
		})
		msg += fmt.Sprintf(" Неподалеку, в «%s», слышен шум.", noisy.Name)
	}

	// Перемещение видят только соседи по обеим комнатам: общий
	// журнал не должен раскрывать чужие маршруты.
	return handlers.Result{Msg: msg, MsgType: "INFO", Rooms: []int{from, res.To}}, nil
}
