package availability

import (
	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/validator"
)

type ReplaceAvailabilityRequest struct {
	Slots []int `json:"slots"`
}

func (r *ReplaceAvailabilityRequest) Validate() error {
	var errs validator.ValidationErrors

	seen := make(map[int]bool, len(r.Slots))
	for _, slot := range r.Slots {
		if !timeslot.Index(slot).Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   "slots",
				Message: "slot index " + validator.Itoa(slot) + " is outside the weekly grid",
			})
			continue
		}
		if seen[slot] {
			errs = append(errs, validator.ValidationError{
				Field:   "slots",
				Message: "slot index " + validator.Itoa(slot) + " appears more than once",
			})
		}
		seen[slot] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Indices converts the raw request payload to typed slot indices.
// Call Validate first.
func (r *ReplaceAvailabilityRequest) Indices() []timeslot.Index {
	out := make([]timeslot.Index, 0, len(r.Slots))
	for _, slot := range r.Slots {
		out = append(out, timeslot.Index(slot))
	}
	return out
}

type AvailabilityResponse struct {
	UserID string `json:"user_id"`
	Slots  []int  `json:"slots"`
}
