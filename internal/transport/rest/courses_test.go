package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fairwaylabs/golftrack-backend/internal/course"
)

func catalogFromCSV(t *testing.T, csvData string) *course.Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "courses.csv")
	if err := os.WriteFile(path, []byte(csvData), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	catalog, err := course.Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return catalog
}

func TestCoursesList_ReturnsCatalog(t *testing.T) {
	t.Parallel()

	catalog := catalogFromCSV(t, `course_name,hole,par,yardage,layout_image
Pebble Creek,1,4,380,pebble.png
Pebble Creek,2,3,165,pebble.png
Oak Ridge,1,5,510,
`)
	h := NewCoursesHandler(catalog, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []coursePayload
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(resp))
	}

	// Sorted by name: Oak Ridge before Pebble Creek.
	if resp[0].Name != "Oak Ridge" || resp[1].Name != "Pebble Creek" {
		t.Errorf("unexpected order: %q, %q", resp[0].Name, resp[1].Name)
	}

	pebble := resp[1]
	if len(pebble.Holes) != 2 {
		t.Fatalf("expected 2 holes for Pebble Creek, got %d", len(pebble.Holes))
	}
	if pebble.TotalPar != 7 {
		t.Errorf("expected total_par 7, got %d", pebble.TotalPar)
	}
	if pebble.LayoutImage != "pebble.png" {
		t.Errorf("expected layout_image 'pebble.png', got %q", pebble.LayoutImage)
	}
}

func TestCoursesList_EmptyCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := course.Load(filepath.Join(t.TempDir(), "missing.csv"))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	h := NewCoursesHandler(catalog, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []coursePayload
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 0 {
		t.Errorf("expected empty course list, got %d entries", len(resp))
	}
}
