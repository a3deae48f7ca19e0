package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the router needs.
type Handlers struct {
	Rounds  *RoundsHandler
	Stats   *StatsHandler
	Courses *CoursesHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP mux with all routes registered and each route
// wrapped in request logging + metrics.
func NewRouter(logger *slog.Logger, h Handlers) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, WithRequestLogging(logger, pattern, handler))
	}

	route("POST /api/rounds", h.Rounds.Save)
	route("GET /api/rounds", h.Rounds.List)
	route("GET /api/rounds/{id}", h.Rounds.Get)
	route("GET /api/rounds/{id}/holes", h.Rounds.Holes)
	route("GET /api/stats", h.Stats.Overview)
	route("GET /api/courses", h.Courses.List)
	route("GET /health", h.Health.Health)

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
