package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/internal/systems"
)

// HandleFight - один обмен ударами с монстром текущей комнаты.
func HandleFight(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.InGame() {
		return handlers.Result{Msg: "Мертвые не сражаются.", MsgType: "ERROR"}, nil
	}
	if s.Phase() != domain.PhaseExploration {
		return handlers.Result{Msg: "Сейчас не время для боя.", MsgType: "ERROR"}, nil
	}

	room := s.Dungeon().Room(actor.RoomID)
	if room == nil || room.Monster == nil || !room.Monster.Alive {
		return handlers.Result{Msg: "Здесь не с кем сражаться.", MsgType: "ERROR"}, nil
	}

	monster := room.Monster
	actor.LastAction = domain.ActionFight.String()

	res := systems.ResolveAttack(actor, monster, ctx.Rng)

	msg := fmt.Sprintf("%s наносит %s %d урона (HP: %d/%d).",
		actor.Name, monster.Name, res.DamageDealt, res.MonsterHP, monster.MaxHP)

	if res.MonsterKilled {
		room.Cleared = true
		msg += fmt.Sprintf(" %s повержен!", monster.Name)

		for i := 0; i < monster.LootCount; i++ {
			item := systems.RollLoot(ctx.Rng, s.LootPool(), actor.LootBonus)
			actor.AddItem(item)
			msg += fmt.Sprintf(" Добыча: %s.", item.Name)
		}
		return handlers.Result{Msg: msg, MsgType: "COMBAT", Rooms: []int{room.ID}}, nil
	}

	switch {
	case res.FledUsed:
		msg += fmt.Sprintf(" %s скрывается в дымовой завесе от ответного удара.", actor.Name)
	case res.ProtectionUsed:
		msg += " Защитный амулет поглощает ответный удар."
	case res.ReviveUsed:
		msg += fmt.Sprintf(" %s падает замертво, но перо феникса возвращает его к жизни!", actor.Name)
	case res.PlayerDied:
		msg += fmt.Sprintf(" Ответный удар (%d урона) убивает %s.", res.Retaliation, actor.Name)
		delete(room.PlayersInRoom, actor.ID)
		s.AddEvidence(domain.Evidence{
			Type:        "body_found",
			Description: fmt.Sprintf("%s погиб в бою с %s.", actor.Name, monster.Name),
			SubjectID:   actor.ID,
			Round:       s.Round(),
		})
		s.CheckWin()
	default:
		msg += fmt.Sprintf(" Ответный удар: %d урона (HP: %d/%d).",
			res.Retaliation, actor.HP, actor.MaxHP)
	}

	return handlers.Result{Msg: msg, MsgType: "COMBAT", Rooms: []int{room.ID}}, nil
}
