package rest

import (
	"log/slog"
	"net/http"

	"github.com/fairwaylabs/golftrack-backend/internal/course"
	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

// CoursesHandler serves the read-only course reference catalog.
type CoursesHandler struct {
	catalog *course.Catalog
	log     *slog.Logger
}

// NewCoursesHandler creates a CoursesHandler.
func NewCoursesHandler(catalog *course.Catalog, logger *slog.Logger) *CoursesHandler {
	return &CoursesHandler{
		catalog: catalog,
		log:     logger.With("handler", "courses"),
	}
}

type courseHolePayload struct {
	Hole    int `json:"hole"`
	Par     int `json:"par"`
	Yardage int `json:"yardage"`
}

type coursePayload struct {
	Name        string              `json:"name"`
	Holes       []courseHolePayload `json:"holes"`
	TotalPar    int                 `json:"total_par"`
	LayoutImage string              `json:"layout_image,omitempty"`
}

// List returns all known courses with their hole layouts.
// GET /api/courses
func (h *CoursesHandler) List(w http.ResponseWriter, r *http.Request) {
	courses := h.catalog.List()

	payload := make([]coursePayload, len(courses))
	for i, c := range courses {
		payload[i] = toCoursePayload(c)
	}

	writeJSON(w, http.StatusOK, payload)
}

func toCoursePayload(c domain.Course) coursePayload {
	holes := make([]courseHolePayload, len(c.Holes))
	for i, hole := range c.Holes {
		holes[i] = courseHolePayload{Hole: hole.Hole, Par: hole.Par, Yardage: hole.Yardage}
	}
	return coursePayload{
		Name:        c.Name,
		Holes:       holes,
		TotalPar:    c.TotalPar(),
		LayoutImage: c.LayoutImage,
	}
}
