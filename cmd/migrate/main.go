// Command migrate applies pending schema migrations and exits. The server
// also migrates on startup; this command exists for running migrations
// separately, e.g. from CI or before a deploy.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/fairwaylabs/golftrack-backend/internal/adapter/postgres"
	"github.com/fairwaylabs/golftrack-backend/internal/app"
	"github.com/fairwaylabs/golftrack-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		logger.Error("migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
