package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

type roundRepo interface {
	ListSummaries(ctx context.Context) ([]domain.RoundSummary, error)
	ListHoleEntries(ctx context.Context) ([]domain.HoleEntry, error)
}

// Service assembles the statistics report from stored data.
type Service struct {
	rounds roundRepo
	log    *slog.Logger
}

// NewService creates a new stats service.
func NewService(log *slog.Logger, rounds roundRepo) *Service {
	return &Service{
		rounds: rounds,
		log:    log.With("service", "stats"),
	}
}

// Overview fetches all round summaries and hole entries and computes the
// cross-round report. An empty dataset is a valid state: the overview comes
// back with HasData=false and no averages.
func (s *Service) Overview(ctx context.Context) (*domain.StatsOverview, error) {
	summaries, err := s.rounds.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list round summaries: %w", err)
	}

	if len(summaries) == 0 {
		return &domain.StatsOverview{HasData: false}, nil
	}

	entries, err := s.rounds.ListHoleEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hole entries: %w", err)
	}

	avgScore, err := AverageScore(summaries)
	if err != nil {
		return nil, err
	}
	avgPutts, err := AveragePutts(summaries)
	if err != nil {
		return nil, err
	}

	return &domain.StatsOverview{
		HasData:     true,
		TotalRounds: TotalRounds(summaries),
		AvgScore:    avgScore,
		AvgPutts:    avgPutts,
		FairwayPct:  FairwayPercentage(entries),
		GreenPct:    GreenPercentage(entries),
	}, nil
}
