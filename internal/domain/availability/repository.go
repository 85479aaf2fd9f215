package availability

import (
	"context"

	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
)

type Repository interface {
	// Replace overwrites the user's entire availability set in a single
	// unit of work.
	Replace(ctx context.Context, userID string, slots []timeslot.Index) error
	// GetByUser returns the saved slot set. A user with no saved
	// availability yields an empty slice, not an error.
	GetByUser(ctx context.Context, userID string) ([]timeslot.Index, error)
}

type Service interface {
	Replace(ctx context.Context, req ReplaceAvailabilityRequest) (AvailabilityResponse, error)
	Get(ctx context.Context) (AvailabilityResponse, error)
}
