package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestWithRequestLogging_SetsRequestID(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := WithRequestLogging(testLogger(), "GET /api/rounds", next)

	req := httptest.NewRequest(http.MethodGet, "/api/rounds", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	id := rec.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("expected X-Request-ID header")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("X-Request-ID is not a valid UUID: %q", id)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204 to pass through, got %d", rec.Code)
	}
}

func TestWithRequestLogging_UniquePerRequest(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	h := WithRequestLogging(testLogger(), "GET /api/stats", next)

	ids := map[string]struct{}{}
	for range 5 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		ids[rec.Header().Get("X-Request-ID")] = struct{}{}
	}

	if len(ids) != 5 {
		t.Errorf("expected 5 unique request IDs, got %d", len(ids))
	}
}
