package job

import (
	"time"

	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
)

// Posting is a published job ad together with the time slots the
// employer requires. The requirement set is fixed at posting time and
// never mutated by matching.
type Posting struct {
	ID          string
	Title       string
	Workplace   string
	Location    string
	Address     string
	Category    string
	HourlyRate  int
	Deadline    *time.Time
	IsOpen      bool
	Requirement []timeslot.Index
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
