package shift

import (
	"time"

	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
)

// ShiftRecord is one concrete worked (or planned) shift. EndTime may
// be numerically earlier than StartTime, meaning the shift crosses
// midnight; duration is always computed modulo 24h.
type ShiftRecord struct {
	ID            string
	UserID        string
	WorkplaceName string
	WorkDate      time.Time // date only, normalized to midnight UTC
	StartTime     timeslot.ClockTime
	EndTime       timeslot.ClockTime
	HourlyRate    int
	// IsWeeklyFixed marks shifts that belong to a weekly-recurring
	// group; every record generated from one recurring request shares
	// the same GroupID.
	IsWeeklyFixed bool
	GroupID       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DurationMinutes is the shift length in minutes, wrapping past
// midnight when the end time precedes the start time.
func (r ShiftRecord) DurationMinutes() int {
	raw := int(r.EndTime) - int(r.StartTime)
	if raw < 0 {
		raw += timeslot.MinutesPerDay
	}
	return raw
}
