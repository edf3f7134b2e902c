package domain

import "encoding/json"

// InternalCommand - команда для движка. Использует ActionType вместо строки.
type InternalCommand struct {
	Action  ActionType
	Token   string          // ID игрока-отправителя
	Payload json.RawMessage // Сырые данные, парсятся хендлером
}
