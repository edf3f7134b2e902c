package engine

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/systems"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/dungeon"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/logger"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/utils"
	"github.com/sirupsen/logrus"
)

// GameSession - один изолированный забег. Все бывшие глобальные
// синглтоны (подземелье, ростер, держатель ключа, хэндлы таймеров)
// живут здесь, поэтому процесс спокойно тянет несколько сессий.
//
// Мутирует состояние ровно один логический писатель: цикл Run.
// Команды и отложенные задачи сериализуются через каналы.
type GameSession struct {
	ID   string
	Seed int64

	dungeon  *domain.Dungeon
	roster   []*domain.Player
	byID     map[string]*domain.Player
	phase    domain.Phase
	round    int
	lootPool []domain.LootItem

	keyHolderID string

	votes map[string]string // голосующий -> цель, "" = воздержался

	accusations []domain.Accusation
	evidence    []domain.Evidence
	suspicious  []domain.SuspiciousAction

	winner    string
	winReason string

	rng    *rand.Rand
	logs   []logRecord
	replay *domain.ReplaySession

	clock     Clock
	scheduler *Scheduler
	service   *GameService

	CommandChan chan domain.InternalCommand
	taskChan    chan func()
	quit        chan struct{}
	stopOnce    sync.Once

	// dispatch сериализует отложенные задачи через цикл Run.
	// Тесты подменяют его прямым вызовом: там единственный
	// логический писатель - сам тест.
	dispatch func(f func())

	aiTickTask   int
	dayLimitTask int
	votingTask   int
}

// NewSession создает сессию: генерирует подземелье от сида и
// расставляет игроков в стартовой комнате. Роли назначает StartGame.
func NewSession(id string, roster []*domain.Player, seed int64, clock Clock, service *GameService) *GameSession {
	rng := rand.New(rand.NewSource(seed))

	gs := &GameSession{
		ID:          id,
		Seed:        seed,
		dungeon:     dungeon.GenerateDefault(rng),
		roster:      roster,
		byID:        make(map[string]*domain.Player, len(roster)),
		phase:       domain.PhaseStart,
		round:       1,
		lootPool:    dungeon.LootPool(),
		votes:       make(map[string]string),
		rng:         rng,
		clock:       clock,
		service:     service,
		CommandChan: make(chan domain.InternalCommand, 100),
		taskChan:    make(chan func(), 100),
		quit:        make(chan struct{}),
		replay: &domain.ReplaySession{
			SessionID: id,
			Seed:      seed,
			Timestamp: clock.Now().Unix(),
		},
	}
	gs.scheduler = NewScheduler(clock)
	gs.dispatch = gs.post

	for _, p := range roster {
		gs.byID[p.ID] = p
		p.RoomID = gs.dungeon.StartID
		gs.dungeon.Room(gs.dungeon.StartID).PlayersInRoom[p.ID] = true
		p.MarkExplored(gs.dungeon.StartID)
	}

	return gs
}

// Run - игровой цикл сессии. Единственный мутатор состояния.
func (gs *GameSession) Run() {
	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   gs.ID,
		"seed":      gs.Seed,
	}).Info("Session loop started")

	for {
		select {
		case cmd := <-gs.CommandChan:
			gs.Execute(cmd)
		case task := <-gs.taskChan:
			task()
		case <-gs.quit:
			return
		}
	}
}

// Stop останавливает цикл и снимает все отложенные задачи.
func (gs *GameSession) Stop() {
	gs.stopOnce.Do(func() {
		gs.scheduler.CancelAll()
		close(gs.quit)
	})
}

// post передает задачу в цикл Run.
func (gs *GameSession) post(f func()) {
	select {
	case gs.taskChan <- f:
	case <-gs.quit:
	}
}

// Do выполняет f внутри цикла Run и дожидается завершения.
// Используется транспортом и тестами для безопасного чтения состояния.
func (gs *GameSession) Do(f func()) {
	done := make(chan struct{})
	gs.post(func() {
		f()
		close(done)
	})
	select {
	case <-done:
	case <-gs.quit:
	}
}

// schedule ставит отложенную задачу; колбек вернется в цикл Run.
func (gs *GameSession) schedule(d time.Duration, f func()) int {
	return gs.scheduler.After(d, func() {
		gs.dispatch(f)
	})
}

// StartGame назначает роли и открывает первый день.
// Порченых - max(1, floor(n*0.3)), выбор равновероятный; роли
// фиксируются на всю игру и ночью не переназначаются.
func (gs *GameSession) StartGame() {
	shuffled := make([]*domain.Player, len(gs.roster))
	copy(shuffled, gs.roster)
	utils.Shuffle(gs.rng, shuffled)

	corrupted := int(math.Floor(float64(len(shuffled)) * domain.CorruptedFraction))
	if corrupted < 1 {
		corrupted = 1
	}
	for i, p := range shuffled {
		if i < corrupted {
			p.Role = domain.RoleCorrupted
		} else {
			p.Role = domain.RoleInnocent
		}
	}

	gs.seedStartingInventory()

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   gs.ID,
		"players":   len(gs.roster),
		"corrupted": corrupted,
	}).Info("🎲 Roles assigned, game begins")

	gs.AddLog("Отряд спускается в подземелье. Среди вас есть порченые...", "INFO")
	gs.beginDayPhase(false)
}

// Execute выполняет одну команду в контексте сессии.
func (gs *GameSession) Execute(cmd domain.InternalCommand) {
	actor := gs.byID[cmd.Token]
	if actor == nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"session":   gs.ID,
			"token":     cmd.Token,
		}).Warn("Command from unknown player")
		return
	}

	// После финала принимаются только запросы состояния.
	if gs.phase == domain.PhaseResults && cmd.Action != domain.ActionInit {
		return
	}

	if actor.IsHuman && cmd.Action != domain.ActionInit {
		gs.replay.Actions = append(gs.replay.Actions, domain.ReplayAction{
			Round:   gs.round,
			Token:   cmd.Token,
			Action:  cmd.Action,
			Payload: cmd.Payload,
		})
	}

	handler, ok := actionHandlers[cmd.Action]
	if !ok {
		return
	}

	result, err := handler(handlersContext(gs, actor), cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"session":   gs.ID,
			"action":    cmd.Action.String(),
		}).WithError(err).Warn("Command rejected")
		gs.AddPrivateLog(actor.ID, "Команда отклонена: неверные данные.", "ERROR")
	}
	if result.Msg != "" {
		gs.logResult(actor, result)
	}

	gs.publish()
}

// seedStartingInventory подтягивает экипировку из внешнего профиля.
// Отказ хранилища - не повод блокировать игру: стартуем с пустыми руками.
func (gs *GameSession) seedStartingInventory() {
	if gs.service == nil || gs.service.Profiles == nil {
		return
	}
	for _, p := range gs.roster {
		if !p.IsHuman {
			continue
		}
		items, err := gs.service.Profiles.GetEquippedItems(context.Background(), p.ID)
		if err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "session",
				"session":   gs.ID,
				"player":    p.ID,
			}).WithError(err).Warn("Profile lookup failed, starting with empty inventory")
			continue
		}
		p.Inventory = append(p.Inventory, items...)

		// Взятое в забег снаряжение расходуется: обратно в профиль
		// его принесет только тайник при побеге.
		for _, item := range items {
			if err := gs.service.Profiles.DecrementItemQuantity(context.Background(), p.ID, item.Name); err != nil {
				logger.Log.WithFields(logrus.Fields{
					"component": "session",
					"session":   gs.ID,
					"player":    p.ID,
					"item":      item.Name,
				}).WithError(err).Warn("Failed to consume equipped item")
			}
		}
	}
}

// --- Реализация handlers.Session ---

func (gs *GameSession) Dungeon() *domain.Dungeon        { return gs.dungeon }
func (gs *GameSession) Roster() []*domain.Player        { return gs.roster }
func (gs *GameSession) Player(id string) *domain.Player { return gs.byID[id] }
func (gs *GameSession) Phase() domain.Phase             { return gs.phase }
func (gs *GameSession) Round() int                      { return gs.round }
func (gs *GameSession) LootPool() []domain.LootItem     { return gs.lootPool }

func (gs *GameSession) SearchLoot(t domain.RoomType) []domain.LootItem {
	return dungeon.SearchLoot(t)
}
func (gs *GameSession) KeyHolder() string               { return gs.keyHolderID }
func (gs *GameSession) SetKeyHolder(id string)          { gs.keyHolderID = id }

// SpendStamina списывает силы и тут же, синхронно, проверяет ночной
// триггер. Проверка не откладывается: два разных действия не должны
// оба решить, что именно они включили ночь.
func (gs *GameSession) SpendStamina(p *domain.Player, cost int) {
	systems.Spend(p, cost)
	if gs.phase == domain.PhaseExploration && systems.AllExhausted(gs.roster) {
		gs.beginNightPhase()
	}
}

func (gs *GameSession) RecordAccusation(a domain.Accusation) {
	gs.accusations = append(gs.accusations, a)
}

func (gs *GameSession) AddEvidence(e domain.Evidence) {
	gs.evidence = append(gs.evidence, e)
}

func (gs *GameSession) NoteSuspicious(p *domain.Player, action string) {
	gs.suspicious = append(gs.suspicious, domain.SuspiciousAction{
		PlayerID: p.ID,
		Action:   action,
		RoomID:   p.RoomID,
		Round:    gs.round,
	})
}

// CheckWin пересчитывает условия завершения после каждой смерти,
// побега и элиминации.
func (gs *GameSession) CheckWin() {
	if gs.phase == domain.PhaseResults {
		return
	}
	verdict := systems.CheckWin(gs.roster)
	if verdict.Over {
		gs.endGame(verdict)
	}
}
