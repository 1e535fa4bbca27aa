package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"bookcatalog-backend/internal/config"
	"bookcatalog-backend/pkg/container"
	"bookcatalog-backend/pkg/logger"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting application", map[string]interface{}{
		"name":    cfg.App.Name,
		"env":     cfg.App.Environment,
		"version": cfg.App.Version,
	})

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to build container", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	if err := runServer(c); err != nil {
		logger.Error("Server terminated with error", err)
		os.Exit(1)
	}
}
