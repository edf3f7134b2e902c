package storage

import (
	"context"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
)

// Outcome - итог забега для внешнего профиля игрока.
type Outcome struct {
	Won         bool
	Escaped     bool
	LootSecured int
	Gold        int
}

// ProfileStore - внешний сервис аккаунтов/предметов. Ядро вызывает
// его на старте (стартовая экипировка) и в конце игры (статистика)
// и обязано переживать его отказ: пустой инвентарь вместо ошибки,
// пропущенное обновление вместо блокировки игры.
type ProfileStore interface {
	// GetEquippedItems - стартовая экипировка игрока.
	GetEquippedItems(ctx context.Context, userID string) ([]domain.LootItem, error)

	// DecrementItemQuantity списывает единицу предмета: экипировка
	// расходуется при входе в подземелье, обратно ее несет только тайник.
	DecrementItemQuantity(ctx context.Context, userID, name string) error

	// AddItem кладет предмет в профиль (тайник сбежавшего).
	AddItem(ctx context.Context, userID string, item domain.LootItem, equipped bool) error

	UpdateStats(ctx context.Context, userID string, outcome Outcome) error
	Close() error
}
