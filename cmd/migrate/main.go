package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/wherearethenoodles/migrations/inventory"
	"github.com/ghuser/wherearethenoodles/pkg/config"
	"github.com/ghuser/wherearethenoodles/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, inventory.FS); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")
}
