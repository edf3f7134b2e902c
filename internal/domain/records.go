package domain

// Записи социальной дедукции. Все три журнала append-only и живут
// ровно один забег.

// Accusation - публичное обвинение одного игрока другим.
type Accusation struct {
	AccuserID string `json:"accuserId"`
	AccusedID string `json:"accusedId"`
	Reason    string `json:"reason"`
	Round     int    `json:"round"`
}

// Evidence - улика, привязанная к игроку.
type Evidence struct {
	Type        string `json:"type"` // witnessed, noise, body_found
	Description string `json:"description"`
	SubjectID   string `json:"subjectId"`
	Round       int    `json:"round"`
}

// SuspiciousAction - подозрительное действие, замеченное соседями по комнате.
type SuspiciousAction struct {
	PlayerID string `json:"playerId"`
	Action   string `json:"action"`
	RoomID   int    `json:"roomId"`
	Round    int    `json:"round"`
}
