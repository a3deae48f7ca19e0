package rounds

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
	"github.com/fairwaylabs/golftrack-backend/internal/observability"
	"github.com/fairwaylabs/golftrack-backend/internal/service/stats"
)

// SaveRoundResult is the outcome of a successful round submission: the new
// round's identity plus the totals the form shows without re-reading storage.
type SaveRoundResult struct {
	RoundID int64
	Totals  domain.RoundTotals
}

// SaveRound validates and persists a complete round with all its hole
// entries. The round row and every hole-entry row are written in a single
// transaction: if any insert fails, nothing of the submission is visible
// afterwards.
func (s *Service) SaveRound(ctx context.Context, input SaveRoundInput) (*SaveRoundResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	course := strings.TrimSpace(input.Course)
	holes := input.entries()

	// Zero playedAt lets the storage layer apply its now() default.
	var playedAt time.Time
	if input.PlayedAt != nil {
		playedAt = *input.PlayedAt
	}

	var roundID int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var insertErr error
		roundID, insertErr = s.rounds.InsertRound(txCtx, course, playedAt)
		if insertErr != nil {
			return fmt.Errorf("insert round: %w", insertErr)
		}

		if insertErr = s.rounds.InsertHoleEntries(txCtx, roundID, holes); insertErr != nil {
			return fmt.Errorf("insert hole entries: %w", insertErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.RecordRoundSaved(len(holes))

	s.log.InfoContext(ctx, "round saved",
		slog.Int64("round_id", roundID),
		slog.String("course", course),
		slog.Int("holes", len(holes)),
	)

	return &SaveRoundResult{
		RoundID: roundID,
		Totals:  stats.RoundTotals(holes),
	}, nil
}
