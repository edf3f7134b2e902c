package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/lobby"
	"github.com/rian010194/shadows-of-the-dungeon/internal/network"
	"github.com/rian010194/shadows-of-the-dungeon/internal/storage"
	"github.com/rian010194/shadows-of-the-dungeon/internal/storage/replay"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
)

// GameService управляет набором сессий и маршрутизирует команды
// игроков в их сессии. Hub, профили и реплеи - общие для процесса.
type GameService struct {
	Config Config
	Hub    *network.Broadcaster

	// Внешние коллабораторы. Оба опциональны: их отказ или отсутствие
	// не мешает играть.
	Profiles storage.ProfileStore
	Replays  *replay.Service

	clock Clock

	mu            sync.RWMutex
	sessions      map[string]*GameSession
	playerSession map[string]string // PlayerID -> SessionID
}

// NewService создает сервис движка.
func NewService(cfg Config) *GameService {
	return &GameService{
		Config:        cfg,
		Hub:           network.NewBroadcaster(),
		clock:         NewRealClock(),
		sessions:      make(map[string]*GameSession),
		playerSession: make(map[string]string),
	}
}

// CreateSession собирает ростер, поднимает сессию и запускает игру.
// Сид сессии выводится из мастер-сида и порядкового номера.
func (s *GameService) CreateSession(entries []lobby.Entry) *GameSession {
	s.mu.Lock()
	seed := s.Config.Seed + int64(len(s.sessions))
	s.mu.Unlock()

	rosterRng := rand.New(rand.NewSource(seed))
	roster := lobby.BuildRoster(entries, s.Config.AIFill, rosterRng)

	id := uuid.New().String()
	session := NewSession(id, roster, seed, s.clock, s)

	s.mu.Lock()
	s.sessions[id] = session
	for _, p := range roster {
		s.playerSession[p.ID] = id
	}
	s.mu.Unlock()

	go session.Run()
	session.Do(session.StartGame)

	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"session":   id,
		"seed":      seed,
		"players":   len(roster),
	}).Info("Session created")

	return session
}

// SessionFor возвращает сессию игрока.
func (s *GameService) SessionFor(playerID string) *GameSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sid, ok := s.playerSession[playerID]; ok {
		return s.sessions[sid]
	}
	return nil
}

// ProcessCommand конвертирует внешнюю команду и передает в цикл сессии.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) error {
	session := s.SessionFor(cmd.Token)
	if session == nil {
		return fmt.Errorf("no session for player %s", cmd.Token)
	}

	internal := domain.InternalCommand{
		Action:  domain.ParseAction(cmd.Action),
		Token:   cmd.Token,
		Payload: cmd.Payload,
	}
	if internal.Action == domain.ActionUnknown {
		return fmt.Errorf("unknown action %q", cmd.Action)
	}

	select {
	case session.CommandChan <- internal:
		return nil
	default:
		return fmt.Errorf("session %s command queue is full", session.ID)
	}
}

// Shutdown останавливает все сессии.
func (s *GameService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, session := range s.sessions {
		session.Stop()
	}
}

// RunPlayback проигрывает записанную партию: регенерирует сессию из
// сида реплея и синхронно скармливает ей записанные команды.
func (s *GameService) RunPlayback(path string) error {
	if s.Replays == nil {
		return fmt.Errorf("replay service is not configured")
	}

	rec, err := s.Replays.Load(path)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}

	// Людей восстанавливаем по токенам из ленты действий.
	var entries []lobby.Entry
	seen := make(map[string]bool)
	for _, act := range rec.Actions {
		if !seen[act.Token] {
			seen[act.Token] = true
			entries = append(entries, lobby.Entry{UserID: act.Token, Username: "Игрок " + act.Token[:minInt(4, len(act.Token))]})
		}
	}

	rosterRng := rand.New(rand.NewSource(rec.Seed))
	roster := lobby.BuildRoster(entries, s.Config.AIFill, rosterRng)

	// Остановленные часы: фазовые таймеры в симуляции не тикают,
	// ход игры задает только лента. Прямой вызов dispatch - в режиме
	// проигрывания единственный писатель - мы.
	clock := NewFrozenClock(time.Unix(rec.Timestamp, 0))
	session := NewSession(uuid.New().String(), roster, rec.Seed, clock, s)
	session.dispatch = func(f func()) { f() }
	session.StartGame()

	for _, act := range rec.Actions {
		// Окно обсуждения в симуляции не ждем.
		if session.phase == domain.PhaseDiscussion {
			session.beginVotingPhase()
		}
		session.Execute(domain.InternalCommand{
			Action:  act.Action,
			Token:   act.Token,
			Payload: act.Payload,
		})
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"actions":   len(rec.Actions),
		"phase":     session.Phase().String(),
	}).Info("💿 Playback finished")

	session.Stop()
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
