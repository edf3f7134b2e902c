package api

import "encoding/json"

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - входящее сообщение от клиента.
type ClientCommand struct {
	Token   string          `json:"token,omitempty"` // ID игрока-отправителя
	Action  string          `json:"action"`          // MOVE, SEARCH, VOTE...
	Payload json.RawMessage `json:"payload"`
}

// MovePayload: направление перехода.
// Используется в: MOVE
type MovePayload struct {
	Direction string `json:"direction"` // north, south, east, west
}

// TargetPayload: взаимодействие с конкретным игроком.
// Используется в: VOTE (MURDER выбирает жертву сам и данных не несет)
type TargetPayload struct {
	TargetID string `json:"targetId"`
	Abstain  bool   `json:"abstain,omitempty"` // только для VOTE
}

// ItemPayload: использование предмета из инвентаря.
// Используется в: USE_ITEM
type ItemPayload struct {
	ItemName string `json:"itemName"`
}

// AccusePayload: публичное обвинение.
// Используется в: ACCUSE
type AccusePayload struct {
	TargetID string `json:"targetId"`
	Reason   string `json:"reason"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - персональный "снимок" сессии для одного наблюдателя.
// Отправляется после каждого изменения состояния, видимого этому игроку.
type ServerResponse struct {
	Type  string `json:"type"` // UPDATE, GAME_OVER
	Phase string `json:"phase"`
	Round int    `json:"round"`

	// MyPlayerID - ID игрока, которому адресован снимок.
	MyPlayerID string `json:"myPlayerId,omitempty"`

	// Me - полное состояние собственного персонажа (включая роль).
	Me *SelfView `json:"me,omitempty"`

	// Room - комната, в которой стоит наблюдатель.
	Room *RoomView `json:"room,omitempty"`

	// Map - все комнаты, которые наблюдатель уже исследовал.
	Map []RoomView `json:"map,omitempty"`

	// Players - видимая часть состояния остальных игроков (без ролей).
	Players []PlayerView `json:"players,omitempty"`

	Logs []LogEntry `json:"logs,omitempty"`

	// Результат игры, только при Type == GAME_OVER.
	Winner    string `json:"winner,omitempty"`
	WinReason string `json:"winReason,omitempty"`
}

// SelfView - приватное состояние собственного персонажа.
type SelfView struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Class      string     `json:"class"`
	Role       string     `json:"role"`
	HP         int        `json:"hp"`
	MaxHP      int        `json:"maxHp"`
	Stamina    int        `json:"stamina"`
	MaxStamina int        `json:"maxStamina"`
	Alive      bool       `json:"alive"`
	Escaped    bool       `json:"escaped"`
	HasKey     bool       `json:"hasKey"`
	Inventory  []ItemView `json:"inventory"`
	Stash      []ItemView `json:"stash,omitempty"`
}

// PlayerView - то, что о чужом игроке видят остальные.
// Роль не раскрывается до смерти или конца игры.
type PlayerView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Class      string `json:"class"`
	Alive      bool   `json:"alive"`
	Escaped    bool   `json:"escaped"`
	RoomID     int    `json:"roomId,omitempty"` // только для соседей по комнате
	LastAction string `json:"lastAction,omitempty"`
	Role       string `json:"role,omitempty"` // раскрытая роль (смерть/конец игры)
}

// RoomView - DTO комнаты для клиента.
type RoomView struct {
	ID          int      `json:"id"`
	X           int      `json:"x"`
	Y           int      `json:"y"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Exits       []string `json:"exits,omitempty"`
	Cleared     bool     `json:"cleared"`
	Players     []string `json:"players,omitempty"` // имена находящихся в комнате
	Monster     *MonsterView `json:"monster,omitempty"`
}

// MonsterView - DTO монстра. HP в логах и снимках не опускается ниже нуля.
type MonsterView struct {
	Name   string `json:"name"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"maxHp"`
	IsBoss bool   `json:"isBoss"`
	Alive  bool   `json:"alive"`
}

// ItemView - DTO предмета.
type ItemView struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
}

// LogEntry - одна запись игрового журнала.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, NIGHT, VOTE, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}
