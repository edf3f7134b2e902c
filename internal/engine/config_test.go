package engine

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv регистрирует откат, Unsetenv реально убирает переменную
	for _, key := range []string{"SHADOWS_PORT", "SHADOWS_SEED", "SHADOWS_AI_FILL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.AIFill != 5 {
		t.Errorf("Expected default AI fill 5, got %d", cfg.AIFill)
	}
	// Нулевой сид заменяется случайным
	if cfg.Seed == 0 {
		t.Error("Expected a generated seed instead of 0")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SHADOWS_PORT", "9090")
	t.Setenv("SHADOWS_SEED", "12345")
	t.Setenv("SHADOWS_AI_FILL", "8")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != "9090" || cfg.Seed != 12345 || cfg.AIFill != 8 {
		t.Errorf("Env values not picked up: %+v", cfg)
	}
}
