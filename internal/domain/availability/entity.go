package availability

import (
	"time"

	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
)

// AvailabilitySet is a worker's declared weekly availability. It is
// owned by exactly one user and replaced wholesale on every save; there
// is no incremental diffing.
type AvailabilitySet struct {
	UserID    string
	Slots     []timeslot.Index
	UpdatedAt time.Time
}
