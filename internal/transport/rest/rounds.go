package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
	"github.com/fairwaylabs/golftrack-backend/internal/service/rounds"
)

type roundsService interface {
	SaveRound(ctx context.Context, input rounds.SaveRoundInput) (*rounds.SaveRoundResult, error)
	ListRoundSummaries(ctx context.Context) ([]domain.RoundSummary, error)
	GetRound(ctx context.Context, roundID int64) (*domain.RoundSummary, error)
	GetRoundHoles(ctx context.Context, roundID int64) ([]domain.HoleEntry, error)
}

// RoundsHandler serves the round submission and history endpoints.
type RoundsHandler struct {
	rounds roundsService
	log    *slog.Logger
}

// NewRoundsHandler creates a RoundsHandler.
func NewRoundsHandler(rounds roundsService, logger *slog.Logger) *RoundsHandler {
	return &RoundsHandler{
		rounds: rounds,
		log:    logger.With("handler", "rounds"),
	}
}

// holePayload mirrors rounds.HoleInput on the wire.
type holePayload struct {
	Hole    int    `json:"hole"`
	Strokes int    `json:"strokes"`
	FIR     bool   `json:"fir"`
	GIR     bool   `json:"gir"`
	Putts   int    `json:"putts"`
	Weather string `json:"weather"`
}

type saveRoundRequest struct {
	Course   string        `json:"course"`
	PlayedAt *time.Time    `json:"played_at,omitempty"`
	Holes    []holePayload `json:"holes"`
}

type roundTotalsPayload struct {
	Strokes int `json:"strokes"`
	FIR     int `json:"fir"`
	GIR     int `json:"gir"`
	Putts   int `json:"putts"`
}

type saveRoundResponse struct {
	RoundID int64              `json:"round_id"`
	Totals  roundTotalsPayload `json:"totals"`
}

type roundSummaryPayload struct {
	RoundID  int64     `json:"round_id"`
	Course   string    `json:"course"`
	PlayedAt time.Time `json:"played_at"`
	Strokes  int       `json:"strokes"`
	FIR      int       `json:"fir"`
	GIR      int       `json:"gir"`
	Putts    int       `json:"putts"`
}

// Save handles round submission.
// POST /api/rounds
func (h *RoundsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	input := rounds.SaveRoundInput{
		Course:   req.Course,
		PlayedAt: req.PlayedAt,
		Holes:    make([]rounds.HoleInput, len(req.Holes)),
	}
	for i, hp := range req.Holes {
		input.Holes[i] = rounds.HoleInput{
			Hole:    hp.Hole,
			Strokes: hp.Strokes,
			FIR:     hp.FIR,
			GIR:     hp.GIR,
			Putts:   hp.Putts,
			Weather: domain.Weather(hp.Weather),
		}
	}

	result, err := h.rounds.SaveRound(r.Context(), input)
	if err != nil {
		writeDomainError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, saveRoundResponse{
		RoundID: result.RoundID,
		Totals: roundTotalsPayload{
			Strokes: result.Totals.Strokes,
			FIR:     result.Totals.FIR,
			GIR:     result.Totals.GIR,
			Putts:   result.Totals.Putts,
		},
	})
}

// List returns all round summaries, most recent first.
// GET /api/rounds
func (h *RoundsHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.rounds.ListRoundSummaries(r.Context())
	if err != nil {
		writeDomainError(w, h.log, r, err)
		return
	}

	payload := make([]roundSummaryPayload, len(summaries))
	for i, s := range summaries {
		payload[i] = toSummaryPayload(s)
	}

	writeJSON(w, http.StatusOK, payload)
}

// Get returns one round's summary.
// GET /api/rounds/{id}
func (h *RoundsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid round id")
		return
	}

	summary, err := h.rounds.GetRound(r.Context(), id)
	if err != nil {
		writeDomainError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryPayload(*summary))
}

// Holes returns one round's per-hole detail in course order.
// GET /api/rounds/{id}/holes
func (h *RoundsHandler) Holes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid round id")
		return
	}

	entries, err := h.rounds.GetRoundHoles(r.Context(), id)
	if err != nil {
		writeDomainError(w, h.log, r, err)
		return
	}

	payload := make([]holePayload, len(entries))
	for i, e := range entries {
		payload[i] = holePayload{
			Hole:    e.Hole,
			Strokes: e.Strokes,
			FIR:     e.FIR,
			GIR:     e.GIR,
			Putts:   e.Putts,
			Weather: e.Weather.String(),
		}
	}

	writeJSON(w, http.StatusOK, payload)
}

func toSummaryPayload(s domain.RoundSummary) roundSummaryPayload {
	return roundSummaryPayload{
		RoundID:  s.RoundID,
		Course:   s.Course,
		PlayedAt: s.PlayedAt,
		Strokes:  s.Strokes,
		FIR:      s.FIR,
		GIR:      s.GIR,
		Putts:    s.Putts,
	}
}
