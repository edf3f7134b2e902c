package engine

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config - параметры запуска движка. Заполняется из переменных
// окружения, сид можно перекрыть флагом -seed в main.go.
type Config struct {
	Port      string `env:"SHADOWS_PORT" envDefault:"8080"`
	Seed      int64  `env:"SHADOWS_SEED" envDefault:"0"`
	DBPath    string `env:"SHADOWS_DB_PATH" envDefault:"shadows.db"`
	ReplayDir string `env:"SHADOWS_REPLAY_DIR" envDefault:"replays"`

	// AIFill - до скольких игроков добивать сессию ботами.
	AIFill int `env:"SHADOWS_AI_FILL" envDefault:"5"`
}

// LoadConfig читает конфигурацию из окружения.
// Seed == 0 означает "сгенерировать случайно".
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}
