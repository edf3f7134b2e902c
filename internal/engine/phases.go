package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/storage"
	"github.com/rian010194/shadows-of-the-dungeon/internal/systems"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/logger"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
	"github.com/sirupsen/logrus"
)

// beginDayPhase открывает день. При advanceRound (после голосования)
// раунд растет и всем оставшимся в игре полностью восстанавливаются
// силы - это и есть "сон". На границе ночь->голосование запас сил
// НЕ трогается.
func (gs *GameSession) beginDayPhase(advanceRound bool) {
	if advanceRound {
		gs.round++
		gs.dungeon.Round = gs.round
		for _, p := range gs.roster {
			if p.InGame() {
				systems.Refill(p)
			}
		}
	}

	gs.phase = domain.PhaseExploration
	gs.AddLog(fmt.Sprintf("☀️ День %d. Подземелье ждет.", gs.round), "INFO")

	gs.scheduleAITick()

	// Затянувшийся день принудительно обрывается ночью.
	gs.dayLimitTask = gs.schedule(domain.DayPhaseLimit, func() {
		if gs.phase != domain.PhaseExploration {
			return
		}
		gs.AddLog("Факелы догорают. Тьма приходит раньше времени...", "NIGHT")
		gs.beginNightPhase()
		gs.publish()
	})

	gs.publish()
}

// beginNightPhase включает ночь. Вызывается синхронно из SpendStamina
// (все выдохлись) либо по таймеру дня. Роли уже назначены на старте:
// ночью действуют живые не сбежавшие порченые с полным запасом сил.
func (gs *GameSession) beginNightPhase() {
	gs.scheduler.Cancel(gs.aiTickTask)
	gs.scheduler.Cancel(gs.dayLimitTask)

	gs.phase = domain.PhaseNight

	killers := systems.NightKillers(gs.roster)
	if len(killers) == 0 {
		// Порченых не осталось - CheckWin уже должен был закончить
		// игру, но на всякий случай не зависаем в пустой ночи.
		gs.EndNight()
		return
	}

	for _, k := range killers {
		systems.Refill(k)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   gs.ID,
		"round":     gs.round,
		"killers":   len(killers),
	}).Info("🌙 Night phase begins")

	gs.AddLog("🌙 Силы отряда на исходе. Все засыпают... но кто-то не спит.", "NIGHT")

	// ИИ-убийцы действуют сами с небольшой задержкой. Человек-порченый
	// получает команды MURDER/SEARCH/MOVE; таймаута у ночи нет.
	for _, k := range killers {
		if k.IsHuman {
			continue
		}
		killer := k
		gs.schedule(domain.AIJitterMin, func() {
			if gs.phase != domain.PhaseNight || !killer.InGame() {
				return
			}
			gs.Execute(domain.InternalCommand{Action: domain.ActionMurder, Token: killer.ID})
		})
	}
}

// EndNight завершает ночную фазу и открывает обсуждение перед
// голосованием. Запас сил выживших здесь сознательно не трогается.
func (gs *GameSession) EndNight() {
	if gs.phase != domain.PhaseNight {
		return
	}

	gs.phase = domain.PhaseDiscussion
	gs.AddLog("Рассвет. Отряд собирается, чтобы обсудить ночные события.", "INFO")

	gs.schedule(domain.DiscussionWindow, func() {
		if gs.phase != domain.PhaseDiscussion {
			return
		}
		gs.beginVotingPhase()
		gs.publish()
	})
}

// beginVotingPhase открывает окно голосования. ИИ голосуют сразу
// (с шансом воздержаться), люди - командой VOTE до конца окна.
func (gs *GameSession) beginVotingPhase() {
	gs.phase = domain.PhaseVoting
	gs.votes = make(map[string]string)
	for _, p := range gs.roster {
		p.VoteTarget = ""
		p.Abstained = false
	}

	gs.AddLog("🗳️ Голосование открыто: кого изгнать из отряда?", "VOTE")

	for _, p := range gs.roster {
		if p.IsHuman || !p.InGame() {
			continue
		}
		target, abstain := systems.AIVote(gs.rng, p, gs.roster)
		gs.RecordVote(p.ID, target, abstain)
	}

	gs.votingTask = gs.schedule(domain.VotingWindow, func() {
		gs.resolveVoting()
	})

	// Если людей в игре нет, все голоса уже собраны.
	gs.maybeResolveEarly()
}

// RecordVote фиксирует голос (перезапись разрешена до конца окна).
func (gs *GameSession) RecordVote(voterID, targetID string, abstain bool) {
	voter := gs.byID[voterID]
	if voter == nil {
		return
	}
	if abstain {
		gs.votes[voterID] = ""
		voter.Abstained = true
		voter.VoteTarget = ""
	} else {
		gs.votes[voterID] = targetID
		voter.Abstained = false
		voter.VoteTarget = targetID
	}
	gs.maybeResolveEarly()
}

// maybeResolveEarly закрывает голосование досрочно, когда высказались
// все оставшиеся в игре.
func (gs *GameSession) maybeResolveEarly() {
	if gs.phase != domain.PhaseVoting {
		return
	}
	for _, p := range gs.roster {
		if p.InGame() {
			if _, ok := gs.votes[p.ID]; !ok {
				return
			}
		}
	}
	gs.scheduler.Cancel(gs.votingTask)
	gs.resolveVoting()
}

// resolveVoting подводит итог: простое большинство, ничья наверху -
// никто не изгнан. Роль изгнанного раскрывается всем.
func (gs *GameSession) resolveVoting() {
	if gs.phase != domain.PhaseVoting {
		return
	}

	targetID, decided := systems.Tally(gs.votes)
	if !decided {
		gs.AddLog("Голоса разделились. Никто не изгнан.", "VOTE")
	} else if target := gs.byID[targetID]; target != nil && target.InGame() {
		target.Alive = false
		if room := gs.dungeon.Room(target.RoomID); room != nil {
			delete(room.PlayersInRoom, target.ID)
		}
		gs.AddLog(fmt.Sprintf("⚖️ Отряд изгоняет %s. Роль: %s.",
			target.Name, roleReveal(target.Role)), "VOTE")
	}

	gs.CheckWin()
	if gs.phase == domain.PhaseResults {
		gs.publish()
		return
	}

	gs.beginDayPhase(true)
}

func roleReveal(r domain.Role) string {
	if r == domain.RoleCorrupted {
		return "ПОРЧЕНЫЙ"
	}
	return "невинный"
}

// endGame закрывает сессию: фаза результатов, отчет во внешний профиль,
// сохранение реплея. Все отложенные задачи снимаются.
func (gs *GameSession) endGame(verdict systems.Verdict) {
	gs.scheduler.CancelAll()
	gs.phase = domain.PhaseResults
	gs.winner = verdict.Winner
	gs.winReason = verdict.Reason

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   gs.ID,
		"winner":    verdict.Winner,
		"rounds":    gs.round,
	}).Info("🏁 Game over")

	switch verdict.Winner {
	case "innocent":
		gs.AddLog("🏆 Невинные побеждают! "+verdict.Reason, "INFO")
	case "corrupted":
		gs.AddLog("💀 Порченые побеждают! "+verdict.Reason, "INFO")
	default:
		gs.AddLog("Подземелье опустело. "+verdict.Reason, "INFO")
	}

	gs.reportOutcomes()
	gs.saveReplay()
	gs.publishGameOver()
}

// reportOutcomes отправляет итоги забега во внешний профиль.
// Ошибки хранилища глотаются: прогресс не сохранился - игра не ломается.
func (gs *GameSession) reportOutcomes() {
	if gs.service == nil || gs.service.Profiles == nil {
		return
	}
	for _, p := range gs.roster {
		if !p.IsHuman {
			continue
		}
		won := (p.Role == domain.RoleCorrupted) == (gs.winner == "corrupted") && gs.winner != ""
		err := gs.service.Profiles.UpdateStats(context.Background(), p.ID, storage.Outcome{
			Won:         won,
			Escaped:     p.Escaped,
			LootSecured: len(p.Stash),
		})
		if err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "session",
				"session":   gs.ID,
				"player":    p.ID,
			}).WithError(err).Warn("Failed to persist outcome")
		}

		// Тайник сбежавшего становится постоянной собственностью.
		if p.Escaped {
			for _, item := range p.Stash {
				if err := gs.service.Profiles.AddItem(context.Background(), p.ID, item, false); err != nil {
					logger.Log.WithFields(logrus.Fields{
						"component": "session",
						"session":   gs.ID,
						"player":    p.ID,
						"item":      item.Name,
					}).WithError(err).Warn("Failed to bank stashed item")
				}
			}
		}
	}
}

func (gs *GameSession) saveReplay() {
	if gs.service == nil || gs.service.Replays == nil {
		return
	}
	if err := gs.service.Replays.Save(gs.replay); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"session":   gs.ID,
		}).WithError(err).Warn("Failed to save replay")
	}
}

// --- Планировщик ИИ ---

// scheduleAITick ставит повторяющийся батч-проход по ИИ-игрокам.
// Каждый подходящий ИИ исполняет действие после собственной случайной
// задержки, чтобы ходы не падали одновременно. На ночь проход
// снимается, день ставит его заново.
func (gs *GameSession) scheduleAITick() {
	gs.aiTickTask = gs.schedule(domain.AITickInterval, func() {
		if gs.phase != domain.PhaseExploration {
			return
		}

		for _, p := range systems.EligibleAI(gs.roster) {
			agent := p
			jitter := domain.AIJitterMin +
				utils.RandRangeDuration(gs.rng, domain.AIJitterMax-domain.AIJitterMin)
			gs.schedule(jitter, func() {
				gs.runAIAction(agent)
			})
		}

		gs.scheduleAITick()
	})
}

// runAIAction исполняет одно решение ИИ, если день еще идет.
func (gs *GameSession) runAIAction(p *domain.Player) {
	if gs.phase != domain.PhaseExploration || !p.InGame() || p.Stamina <= 0 {
		return
	}

	decision := systems.DecideAction(gs.dungeon, p, gs.rng)
	switch decision.Action {
	case domain.ActionMove:
		payload, _ := json.Marshal(api.MovePayload{Direction: decision.Direction.String()})
		gs.Execute(domain.InternalCommand{Action: domain.ActionMove, Token: p.ID, Payload: payload})
	case domain.ActionSearch:
		gs.Execute(domain.InternalCommand{Action: domain.ActionSearch, Token: p.ID})
	default:
		gs.Execute(domain.InternalCommand{Action: domain.ActionWait, Token: p.ID})
	}
}
