package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
)

// Session - то, что хендлеру нужно от игровой сессии.
// GameSession реализует этот интерфейс; хендлеры мутируют состояние
// только через него, поэтому им не нужен доступ к движку целиком.
type Session interface {
	Dungeon() *domain.Dungeon
	Roster() []*domain.Player
	Player(id string) *domain.Player
	Phase() domain.Phase
	Round() int
	LootPool() []domain.LootItem

	// SearchLoot - таблица добычи при обыске для данного типа комнаты.
	SearchLoot(t domain.RoomType) []domain.LootItem

	// SpendStamina списывает силы и СИНХРОННО проверяет ночной триггер.
	SpendStamina(p *domain.Player, cost int)

	KeyHolder() string
	SetKeyHolder(id string)

	RecordVote(voterID, targetID string, abstain bool)
	RecordAccusation(a domain.Accusation)
	AddEvidence(e domain.Evidence)
	NoteSuspicious(p *domain.Player, action string)

	// EndNight завершает ночную фазу (убийство или обыск порченого).
	// Рассветные записи журнала идут следом, поэтому хендлер обязан
	// записать свое сообщение через AddLog ДО вызова EndNight.
	EndNight()

	// AddLog пишет общую запись журнала, видимую всем игрокам.
	// Обычный хендлер возвращает текст через Result; прямая запись
	// нужна только ночным действиям, которые сами завершают фазу.
	AddLog(text, msgType string)

	// AddPrivateLog пишет запись, которую получит один игрок.
	AddPrivateLog(playerID, text, msgType string)

	// CheckWin пересчитывает условия победы после смерти/побега.
	CheckWin()
}

// Context передает хендлеру состояние сессии и актора.
type Context struct {
	Session Session
	Actor   *domain.Player
	Rng     *rand.Rand
}

// Result - итог выполнения команды. Хендлер НЕ пишет в журнал сессии
// напрямую, он возвращает данные.
//
// Видимость записи: Rooms ограничивает ее актором и теми, кто стоит
// в перечисленных комнатах НА МОМЕНТ записи; Private - только актором.
// Пустой Rooms без Private - запись для всех (объявления фаз и т.п.).
// Сообщения типа ERROR всегда уходят только актору.
type Result struct {
	Msg     string // Текст для игрового журнала
	MsgType string // INFO, COMBAT, NIGHT, VOTE, ERROR
	Rooms   []int
	Private bool
}

// HandlerFunc - контракт любой команды (MOVE, SEARCH, VOTE...).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - пустой успешный ответ.
func EmptyResult() Result {
	return Result{}
}
