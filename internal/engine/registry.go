package engine

import (
	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers/actions"
)

// actionHandlers - реестр команд движка. Обертки WithPayload берут
// на себя распаковку JSON и валидацию DTO.
var actionHandlers = map[domain.ActionType]handlers.HandlerFunc{
	domain.ActionInit:    handlers.WithEmptyPayload(actions.HandleInit),
	domain.ActionMove:    handlers.WithPayload(actions.HandleMove),
	domain.ActionSearch:  handlers.WithEmptyPayload(actions.HandleSearch),
	domain.ActionFight:   handlers.WithEmptyPayload(actions.HandleFight),
	domain.ActionCollect: handlers.WithEmptyPayload(actions.HandleCollect),
	domain.ActionDisarm:  handlers.WithEmptyPayload(actions.HandleDisarm),
	domain.ActionTakeKey: handlers.WithEmptyPayload(actions.HandleTakeKey),
	domain.ActionEscape:  handlers.WithEmptyPayload(actions.HandleEscape),
	domain.ActionUseItem: handlers.WithPayload(actions.HandleUse),
	domain.ActionVote:    handlers.WithPayload(actions.HandleVote),
	domain.ActionAccuse:  handlers.WithPayload(actions.HandleAccuse),
	domain.ActionMurder:  handlers.WithEmptyPayload(actions.HandleMurder),
	domain.ActionWait:    handlers.WithEmptyPayload(actions.HandleWait),
}

func handlersContext(gs *GameSession, actor *domain.Player) handlers.Context {
	return handlers.Context{
		Session: gs,
		Actor:   actor,
		Rng:     gs.rng,
	}
}
