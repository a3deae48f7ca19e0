package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	postgres "github.com/fairwaylabs/golftrack-backend/internal/adapter/postgres"
	roundrepo "github.com/fairwaylabs/golftrack-backend/internal/adapter/postgres/round"
	"github.com/fairwaylabs/golftrack-backend/internal/config"
	"github.com/fairwaylabs/golftrack-backend/internal/course"
	"github.com/fairwaylabs/golftrack-backend/internal/service/rounds"
	"github.com/fairwaylabs/golftrack-backend/internal/service/stats"
	"github.com/fairwaylabs/golftrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, applies schema migrations, wires services, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// Schema initialization is an explicit startup step; it is idempotent,
	// so every boot runs it.
	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	catalog, err := course.Load(cfg.Courses.Path)
	if err != nil {
		return fmt.Errorf("load course catalog: %w", err)
	}
	logger.Info("course catalog loaded",
		slog.String("path", cfg.Courses.Path),
		slog.Int("courses", catalog.Len()),
	)

	repo := roundrepo.New(pool)
	tm := postgres.NewTxManager(pool)

	roundsSvc := rounds.NewService(logger, repo, tm)
	statsSvc := stats.NewService(logger, repo)

	router := rest.NewRouter(logger, rest.Handlers{
		Rounds:  rest.NewRoundsHandler(roundsSvc, logger),
		Stats:   rest.NewStatsHandler(statsSvc, logger),
		Courses: rest.NewCoursesHandler(catalog, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
