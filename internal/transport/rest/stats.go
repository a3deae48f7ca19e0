package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

type statsService interface {
	Overview(ctx context.Context) (*domain.StatsOverview, error)
}

// StatsHandler serves the aggregated statistics endpoint.
type StatsHandler struct {
	stats statsService
	log   *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(stats statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		stats: stats,
		log:   logger.With("handler", "stats"),
	}
}

// statsResponse is the JSON shape of the statistics overview. The numeric
// fields are omitted when has_data is false so clients cannot mistake the
// zero values for real averages.
type statsResponse struct {
	HasData     bool     `json:"has_data"`
	TotalRounds int      `json:"total_rounds"`
	AvgScore    *float64 `json:"avg_score,omitempty"`
	AvgPutts    *float64 `json:"avg_putts,omitempty"`
	FairwayPct  *float64 `json:"fairway_pct,omitempty"`
	GreenPct    *float64 `json:"green_pct,omitempty"`
}

// Overview returns cross-round statistics.
// GET /api/stats
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.Overview(r.Context())
	if err != nil {
		writeDomainError(w, h.log, r, err)
		return
	}

	resp := statsResponse{
		HasData:     overview.HasData,
		TotalRounds: overview.TotalRounds,
	}
	if overview.HasData {
		resp.AvgScore = &overview.AvgScore
		resp.AvgPutts = &overview.AvgPutts
		resp.FairwayPct = &overview.FairwayPct
		resp.GreenPct = &overview.GreenPct
	}

	writeJSON(w, http.StatusOK, resp)
}
