package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/internal/storage"

	_ "modernc.org/sqlite"
)

// Store - SQLite-реализация профилей игроков: экипированные предметы
// и накопленная статистика забегов.
type Store struct {
	db *sql.DB
}

var _ storage.ProfileStore = (*Store)(nil)

// Open открывает (или создает) базу профилей и накатывает схему.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite: empty database path")
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS profile_items (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	effect     TEXT NOT NULL DEFAULT '',
	rarity     TEXT NOT NULL DEFAULT 'common',
	quantity   INTEGER NOT NULL DEFAULT 1,
	equipped   INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_profile_items_user ON profile_items(user_id);

CREATE TABLE IF NOT EXISTS profile_stats (
	user_id      TEXT PRIMARY KEY,
	runs         INTEGER NOT NULL DEFAULT 0,
	wins         INTEGER NOT NULL DEFAULT 0,
	escapes      INTEGER NOT NULL DEFAULT 0,
	loot_secured INTEGER NOT NULL DEFAULT 0,
	gold         INTEGER NOT NULL DEFAULT 0
);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

// GetEquippedItems возвращает экипированные предметы пользователя.
// Шаблонные строки эффектов разбираются в тегированные варианты здесь,
// дальше ядро работает только с ними.
func (s *Store) GetEquippedItems(ctx context.Context, userID string) ([]domain.LootItem, error) {
	if userID == "" {
		return nil, errors.New("sqlite: empty user id")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, effect, rarity FROM profile_items
		 WHERE user_id = ? AND equipped = 1 AND quantity > 0`, userID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query equipped items: %w", err)
	}
	defer rows.Close()

	var items []domain.LootItem
	for rows.Next() {
		var name, effect, rarity string
		if err := rows.Scan(&name, &effect, &rarity); err != nil {
			return nil, fmt.Errorf("sqlite: scan item: %w", err)
		}
		items = append(items, domain.NewLootItem(name, effect, domain.Rarity(rarity)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate items: %w", err)
	}
	return items, nil
}

// DecrementItemQuantity списывает одну единицу предмета по имени.
func (s *Store) DecrementItemQuantity(ctx context.Context, userID, name string) error {
	if userID == "" || name == "" {
		return errors.New("sqlite: empty user id or item name")
	}
	_, err := s.db.ExecContext(ctx, `
UPDATE profile_items SET quantity = quantity - 1
WHERE id = (
	SELECT id FROM profile_items
	WHERE user_id = ? AND name = ? AND quantity > 0
	LIMIT 1
)`, userID, name)
	if err != nil {
		return fmt.Errorf("sqlite: decrement item: %w", err)
	}
	return nil
}

// UpdateStats наращивает статистику профиля по итогам забега.
func (s *Store) UpdateStats(ctx context.Context, userID string, o storage.Outcome) error {
	if userID == "" {
		return errors.New("sqlite: empty user id")
	}

	won, escaped := 0, 0
	if o.Won {
		won = 1
	}
	if o.Escaped {
		escaped = 1
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO profile_stats (user_id, runs, wins, escapes, loot_secured, gold)
VALUES (?, 1, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
	runs         = runs + 1,
	wins         = wins + excluded.wins,
	escapes      = escapes + excluded.escapes,
	loot_secured = loot_secured + excluded.loot_secured,
	gold         = gold + excluded.gold`,
		userID, won, escaped, o.LootSecured, o.Gold)
	if err != nil {
		return fmt.Errorf("sqlite: update stats: %w", err)
	}
	return nil
}

// AddItem кладет предмет в профиль (используется сервисом при побеге:
// содержимое тайника становится постоянным).
func (s *Store) AddItem(ctx context.Context, userID string, item domain.LootItem, equipped bool) error {
	if userID == "" {
		return errors.New("sqlite: empty user id")
	}

	eq := 0
	if equipped {
		eq = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profile_items (id, user_id, name, effect, rarity, quantity, equipped)
		 VALUES (?, ?, ?, ?, ?, 1, ?)`,
		uuid.New().String(), userID, item.Name, effectTemplate(item), string(item.Rarity), eq)
	if err != nil {
		return fmt.Errorf("sqlite: add item: %w", err)
	}
	return nil
}

// effectTemplate собирает шаблонную строку обратно из вариантов.
func effectTemplate(item domain.LootItem) string {
	out := ""
	for i, e := range item.Effects {
		if i > 0 {
			out += ";"
		}
		out += fmt.Sprintf("%s:%d", e.Kind.String(), e.Value)
	}
	return out
}

func (s *Store) Close() error {
	return s.db.Close()
}
