package engine

import (
	"github.com/google/uuid"
	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/engine/handlers"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
)

// logRecord - запись журнала вместе с областью видимости.
// Туман войны распространяется и на хронику: чужие перемещения
// и находки не должны утекать наблюдателю через общий журнал.
type logRecord struct {
	entry api.LogEntry

	// visibleTo == nil - запись видна всем. Иначе - только
	// перечисленным игрокам; множество фиксируется в момент записи.
	visibleTo map[string]bool
}

// AddLog добавляет общую запись, видимую всем игрокам сессии.
func (gs *GameSession) AddLog(text, logType string) {
	gs.appendLog(nil, text, logType)
}

// AddPrivateLog добавляет запись, которую получит один игрок.
func (gs *GameSession) AddPrivateLog(playerID, text, logType string) {
	gs.appendLog(map[string]bool{playerID: true}, text, logType)
}

func (gs *GameSession) appendLog(visibleTo map[string]bool, text, logType string) {
	gs.logs = append(gs.logs, logRecord{
		entry: api.LogEntry{
			ID:        uuid.New().String(),
			Text:      text,
			Type:      logType,
			Timestamp: gs.clock.Now().UnixMilli(),
		},
		visibleTo: visibleTo,
	})
	logger.Log.WithFields(logrus.Fields{
		"session":   gs.ID,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}

// logResult переносит сообщение хендлера в журнал с областью
// видимости из Result. Ошибки валидации видит только сам актор.
func (gs *GameSession) logResult(actor *domain.Player, result handlers.Result) {
	switch {
	case result.Private || result.MsgType == "ERROR":
		gs.AddPrivateLog(actor.ID, result.Msg, result.MsgType)

	case len(result.Rooms) > 0:
		visibleTo := map[string]bool{actor.ID: true}
		for _, roomID := range result.Rooms {
			room := gs.dungeon.Room(roomID)
			if room == nil {
				continue
			}
			for id := range room.PlayersInRoom {
				visibleTo[id] = true
			}
		}
		gs.appendLog(visibleTo, result.Msg, result.MsgType)

	default:
		gs.AddLog(result.Msg, result.MsgType)
	}
}

// logsFor возвращает записи, видимые данному наблюдателю, с момента
// последней рассылки.
func (gs *GameSession) logsFor(observerID string) []api.LogEntry {
	var out []api.LogEntry
	for _, rec := range gs.logs {
		if rec.visibleTo == nil || rec.visibleTo[observerID] {
			out = append(out, rec.entry)
		}
	}
	return out
}
