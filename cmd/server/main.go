package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rian010194/shadows-of-the-dungeon/internal/engine"
	"github.com/rian010194/shadows-of-the-dungeon/internal/server"
	"github.com/rian010194/shadows-of-the-dungeon/internal/storage/replay"
	"github.com/rian010194/shadows-of-the-dungeon/internal/storage/sqlite"
	"github.com/rian010194/shadows-of-the-dungeon/internal/version"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/logger"
)

func init() {
	// .env опционален: в проде переменные приходят из окружения.
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	var seed int64
	var replayPath string
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&replayPath, "replay", "", "Path to .sdrp replay file to simulate")
	flag.Parse()

	logger.Log.Info("Starting Shadows of the Dungeon...")
	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Failed to load config: ", err)
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using master seed: %d", cfg.Seed)
	}

	gameService := engine.NewService(cfg)
	gameService.Replays = replay.NewService(cfg.ReplayDir)

	// РЕЖИМ ПРОИГРЫВАНИЯ
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")
		if err := gameService.RunPlayback(replayPath); err != nil {
			logger.Log.Fatal("Playback failed: ", err)
		}
		return
	}

	// Профили в SQLite. Без базы играть можно - прогресс не сохранится.
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Log.WithError(err).Warn("Profile store unavailable, progress will not persist")
	} else {
		gameService.Profiles = store
		defer store.Close()
	}

	srv := server.New(gameService, cfg.Port)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server stopped: ", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down...")
	gameService.Shutdown()
}
