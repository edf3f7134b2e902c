package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/internal/systems"
)

// HandleMurder - эксклюзивное ночное действие порченого.
// Любой исход (успех, промах, пустая комната) завершает ночь.
func HandleMurder(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if s.Phase() != domain.PhaseNight {
		return handlers.Result{Msg: "Убивать можно только под покровом ночи.", MsgType: "ERROR"}, nil
	}
	if actor.Role != domain.RoleCorrupted || !actor.InGame() {
		return handlers.Result{Msg: "Это не твоя ночь.", MsgType: "ERROR"}, nil
	}

	res := systems.ResolveMurder(s.Dungeon(), actor, s.Roster(), ctx.Rng)
	actor.LastAction = domain.ActionWait.String() // убийца не выдает себя

	// Журнал пишется до EndNight, чтобы рассвет в хронике шел
	// после ночных событий.
	switch {
	case res.Victim == nil:
		s.AddLog("Ночью в комнате никого не оказалось.", "NIGHT")

	case !res.Success:
		s.AddEvidence(domain.Evidence{
			Type:        "witnessed",
			Description: fmt.Sprintf("%s слышал в темноте чье-то дыхание.", res.Victim.Name),
			SubjectID:   res.Victim.ID,
			Round:       s.Round(),
		})
		s.AddLog("Кто-то крался в темноте, но жертва ускользнула.", "NIGHT")

	case res.Survived:
		s.AddLog(fmt.Sprintf("Ночью на %s напали, но защита спасла ему жизнь!", res.Victim.Name), "NIGHT")

	default:
		s.AddEvidence(domain.Evidence{
			Type:        "body_found",
			Description: fmt.Sprintf("Утром найдено тело %s.", res.Victim.Name),
			SubjectID:   res.Victim.ID,
			Round:       s.Round(),
		})
		s.AddLog(fmt.Sprintf("Ночь забрала %s.", res.Victim.Name), "NIGHT")
		s.CheckWin()
	}

	s.EndNight()
	return handlers.EmptyResult(), nil
}
