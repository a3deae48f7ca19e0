package rounds

import (
	"fmt"
	"strings"
	"time"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

// HoleInput is the recorded outcome for one hole of a submitted round.
type HoleInput struct {
	Hole    int
	Strokes int
	FIR     bool
	GIR     bool
	Putts   int
	Weather domain.Weather
}

// SaveRoundInput holds the parameters for saving a complete round.
// Holes must arrive in course order; PlayedAt nil means "now".
type SaveRoundInput struct {
	Course   string
	PlayedAt *time.Time
	Holes    []HoleInput
}

// Validate checks all fields and collects all errors.
// A round that fails validation is rejected before any write.
func (i SaveRoundInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Course) == "" {
		errs = append(errs, domain.FieldError{Field: "course", Message: "required"})
	}
	if len(i.Holes) == 0 {
		errs = append(errs, domain.FieldError{Field: "holes", Message: "at least one hole required"})
	}

	for idx, h := range i.Holes {
		field := fmt.Sprintf("holes[%d]", idx)
		if h.Hole < 1 {
			errs = append(errs, domain.FieldError{Field: field + ".hole", Message: "must be >= 1"})
		}
		if h.Strokes < 1 {
			errs = append(errs, domain.FieldError{Field: field + ".strokes", Message: "must be >= 1"})
		}
		if h.Putts < 0 {
			errs = append(errs, domain.FieldError{Field: field + ".putts", Message: "must be >= 0"})
		}
		if !h.Weather.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   field + ".weather",
				Message: fmt.Sprintf("must be one of %v", domain.Weathers()),
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// entries converts the validated input into domain hole entries.
func (i SaveRoundInput) entries() []domain.HoleEntry {
	holes := make([]domain.HoleEntry, len(i.Holes))
	for idx, h := range i.Holes {
		holes[idx] = domain.HoleEntry{
			Hole:    h.Hole,
			Strokes: h.Strokes,
			FIR:     h.FIR,
			GIR:     h.GIR,
			Putts:   h.Putts,
			Weather: h.Weather,
		}
	}
	return holes
}
