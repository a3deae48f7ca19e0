package rounds

import (
	"context"
	"fmt"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

// ListRoundSummaries returns per-round totals for all saved rounds, most
// recent first. An empty result is a valid state, not an error.
func (s *Service) ListRoundSummaries(ctx context.Context) ([]domain.RoundSummary, error) {
	summaries, err := s.rounds.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list round summaries: %w", err)
	}
	return summaries, nil
}

// GetRound returns the totals for a single round.
// Returns domain.ErrNotFound when no such round exists.
func (s *Service) GetRound(ctx context.Context, roundID int64) (*domain.RoundSummary, error) {
	if roundID < 1 {
		return nil, domain.NewValidationError("round_id", "must be >= 1")
	}

	summary, err := s.rounds.GetSummary(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("get round %d: %w", roundID, err)
	}
	return summary, nil
}

// GetRoundHoles returns one round's hole entries in course order.
// Returns domain.ErrNotFound when the round does not exist; a round is never
// stored without entries, so an empty result means no such round.
func (s *Service) GetRoundHoles(ctx context.Context, roundID int64) ([]domain.HoleEntry, error) {
	if roundID < 1 {
		return nil, domain.NewValidationError("round_id", "must be >= 1")
	}

	entries, err := s.rounds.ListHoleEntriesByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("list hole entries for round %d: %w", roundID, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("round %d: %w", roundID, domain.ErrNotFound)
	}
	return entries, nil
}
