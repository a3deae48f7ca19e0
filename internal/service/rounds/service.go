// Package rounds implements round submission and retrieval. A round and its
// hole entries are immutable once saved; the only write path is SaveRound.
package rounds

import (
	"context"
	"log/slog"
	"time"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

type roundRepo interface {
	InsertRound(ctx context.Context, course string, playedAt time.Time) (int64, error)
	InsertHoleEntries(ctx context.Context, roundID int64, holes []domain.HoleEntry) error
	ListSummaries(ctx context.Context) ([]domain.RoundSummary, error)
	GetSummary(ctx context.Context, roundID int64) (*domain.RoundSummary, error)
	ListHoleEntriesByRound(ctx context.Context, roundID int64) ([]domain.HoleEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides round persistence operations.
type Service struct {
	rounds roundRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new rounds service.
func NewService(log *slog.Logger, rounds roundRepo, tx txManager) *Service {
	return &Service{
		rounds: rounds,
		tx:     tx,
		log:    log.With("service", "rounds"),
	}
}
