package response

import (
	"errors"
	"net/http"

	"github.com/timepick-app/timepick-backend-go/internal/domain/application"
	"github.com/timepick-app/timepick-backend-go/internal/domain/job"
	"github.com/timepick-app/timepick-backend-go/internal/domain/shift"
	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Slot grid errors
	case errors.Is(err, timeslot.ErrSlotOutOfRange):
		BadRequest(w, "Time slot index out of range", nil)

	// Job domain errors
	case errors.Is(err, job.ErrPostingNotFound):
		NotFound(w, "Job posting not found")

	// Application domain errors
	case errors.Is(err, application.ErrAlreadyApplied):
		Conflict(w, "Already applied to this job")
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrInvalidRequestData):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrInconsistentTransition):
		InternalServerError(w, "Shift update left the schedule in an inconsistent state")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
