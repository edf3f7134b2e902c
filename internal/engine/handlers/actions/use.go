package actions

import (
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
)

// HandleUse - использование предмета из инвентаря.
// Эффекты - тегированные варианты, диспетчеризация исчерпывающая.
func HandleUse(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	actor := ctx.Actor
	s := ctx.Session

	if !actor.InGame() {
		return handlers.Result{Msg: "Мертвым предметы не нужны.", MsgType: "ERROR"}, nil
	}

	idx := actor.FindItem(p.ItemName)
	if idx < 0 {
		return handlers.Result{Msg: "Такого предмета нет в инвентаре.", MsgType: "ERROR"}, nil
	}

	item := actor.Inventory[idx]
	if len(item.Effects) == 0 {
		return handlers.Result{Msg: fmt.Sprintf("%s нельзя использовать.", item.Name), MsgType: "ERROR"}, nil
	}

	// Предмет расходуется ровно один раз, до применения эффектов.
	actor.RemoveItemAt(idx)
	actor.LastAction = domain.ActionUseItem.String()

	msg := fmt.Sprintf("%s использует %s.", actor.Name, item.Name)

	for _, effect := range item.Effects {
		switch effect.Kind {
		case domain.EffectHeal:
			healed := actor.Heal(effect.Value)
			msg += fmt.Sprintf(" Восстановлено %d HP.", healed)

		case domain.EffectSurviveAttack, domain.EffectBlockAttacks:
			actor.Protection += effect.Value
			msg += fmt.Sprintf(" Защита от %d атак(и).", effect.Value)

		case domain.EffectRevealRole:
			if target := pickRevealTarget(ctx, actor); target != nil {
				msg += fmt.Sprintf(" Видение: %s - %s.", target.Name, roleLabel(target.Role))
			} else {
				msg += " Видение молчит."
			}

		case domain.EffectRevealAllRoles:
			for _, other := range s.Roster() {
				if other.ID != actor.ID && other.InGame() {
					msg += fmt.Sprintf(" %s - %s.", other.Name, roleLabel(other.Role))
				}
			}

		case domain.EffectLootBonus:
			actor.LootBonus += effect.Value
			msg += fmt.Sprintf(" Шанс редкой добычи +%d%%.", effect.Value)

		case domain.EffectEscapeDanger, domain.EffectInstantFlee:
			actor.CanEscape = true
			msg += " Следующей опасности можно избежать."

		case domain.EffectAttackPower:
			actor.AttackBonus += effect.Value
			msg += fmt.Sprintf(" Урон +%d.", effect.Value)

		case domain.EffectRevive:
			actor.HasRevive = true
			msg += " Смерть теперь не приговор."

		case domain.EffectUnknown:
			// Неизвестный эффект отбрасывается еще при парсинге.
		}
	}

	// Видения и прочие эффекты - личное знание актора; соседям по
	// комнате и так виден lastAction "use_item".
	return handlers.Result{Msg: msg, MsgType: "INFO", Private: true}, nil
}

// pickRevealTarget выбирает случайного другого игрока в игре.
func pickRevealTarget(ctx handlers.Context, actor *domain.Player) *domain.Player {
	var others []*domain.Player
	for _, p := range ctx.Session.Roster() {
		if p.ID != actor.ID && p.InGame() {
			others = append(others, p)
		}
	}
	if len(others) == 0 {
		return nil
	}
	return utils.Pick(ctx.Rng, others)
}

func roleLabel(r domain.Role) string {
	if r == domain.RoleCorrupted {
		return "порченый"
	}
	return "невинный"
}
