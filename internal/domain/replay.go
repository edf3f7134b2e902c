package domain

import "encoding/json"

// ReplayAction - одно внешнее действие (команда от игрока).
type ReplayAction struct {
	Round   int             `json:"round"`
	Token   string          `json:"token"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// ReplaySession - полная запись партии. Сида достаточно, чтобы
// регенерировать подземелье и весь рандом сессии.
type ReplaySession struct {
	SessionID string         `json:"sessionId"`
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}
