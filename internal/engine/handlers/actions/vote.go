package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
)

// HandleVote - голос в фазе голосования. Голосуют только живые
// не сбежавшие; перголосовать можно до конца окна.
func HandleVote(ctx handlers.Context, p api.TargetPayload) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.InGame() {
		return handlers.Result{Msg: "Выбывшие не голосуют.", MsgType: "ERROR"}, nil
	}
	if s.Phase() != domain.PhaseVoting {
		return handlers.Result{Msg: "Голосование сейчас не идет.", MsgType: "ERROR"}, nil
	}

	if p.Abstain {
		s.RecordVote(actor.ID, "", true)
		return handlers.Result{Msg: fmt.Sprintf("%s воздерживается.", actor.Name), MsgType: "VOTE"}, nil
	}

	target := s.Player(p.TargetID)
	if target == nil || !target.InGame() {
		return handlers.Result{Msg: "Такой цели нет среди живых.", MsgType: "ERROR"}, nil
	}
	if target.ID == actor.ID {
		return handlers.Result{Msg: "Голосовать против себя нельзя.", MsgType: "ERROR"}, nil
	}

	s.RecordVote(actor.ID, target.ID, false)
	return handlers.Result{
		Msg:     fmt.Sprintf("%s голосует против %s.", actor.Name, target.Name),
		MsgType: "VOTE",
	}, nil
}

// HandleAccuse - публичное обвинение. Доступно в любой дневной фазе,
// запись уходит в append-only журнал улик.
func HandleAccuse(ctx handlers.Context, p api.AccusePayload) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.InGame() {
		return handlers.Result{Msg: "Выбывшие не обвиняют.", MsgType: "ERROR"}, nil
	}

	target := s.Player(p.TargetID)
	if target == nil {
		return handlers.Result{Msg: "Такого игрока нет.", MsgType: "ERROR"}, nil
	}

	s.RecordAccusation(domain.Accusation{
		AccuserID: actor.ID,
		AccusedID: target.ID,
		Reason:    p.Reason,
		Round:     s.Round(),
	})

	return handlers.Result{
		Msg:     fmt.Sprintf("%s обвиняет %s: %s", actor.Name, target.Name, p.Reason),
		MsgType: "VOTE",
	}, nil
}
