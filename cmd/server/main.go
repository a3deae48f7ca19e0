// Command server starts the golftrack HTTP API.
//
// It blocks until SIGINT or SIGTERM, then shuts down gracefully.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/fairwaylabs/golftrack-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
