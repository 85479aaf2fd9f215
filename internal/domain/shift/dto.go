package shift

import (
	"time"

	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	WorkplaceName string `json:"workplace_name"`
	WorkDate      string `json:"work_date"` // YYYY-MM-DD
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	HourlyRate    int    `json:"hourly_rate"`
	RepeatWeekly  bool   `json:"repeat_weekly"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkplaceName) {
		errs = append(errs, validator.ValidationError{
			Field:   "workplace_name",
			Message: "workplace_name is required",
		})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be a valid YYYY-MM-DD date",
		})
	}
	if _, err := timeslot.ParseClock(r.StartTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM clock time",
		})
	}
	if _, err := timeslot.ParseClock(r.EndTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM clock time",
		})
	}
	if r.HourlyRate <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Record builds the template shift record from the validated request.
func (r *CreateShiftRequest) Record(userID string) ShiftRecord {
	date, _ := time.Parse("2006-01-02", r.WorkDate)
	start, _ := timeslot.ParseClock(r.StartTime)
	end, _ := timeslot.ParseClock(r.EndTime)
	return ShiftRecord{
		UserID:        userID,
		WorkplaceName: r.WorkplaceName,
		WorkDate:      date,
		StartTime:     start,
		EndTime:       end,
		HourlyRate:    r.HourlyRate,
		IsWeeklyFixed: r.RepeatWeekly,
	}
}

type EditShiftRequest struct {
	WorkplaceName string `json:"workplace_name"`
	WorkDate      string `json:"work_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	HourlyRate    int    `json:"hourly_rate"`
	RepeatWeekly  bool   `json:"repeat_weekly"`
}

func (r *EditShiftRequest) Validate() error {
	req := CreateShiftRequest{
		WorkplaceName: r.WorkplaceName,
		WorkDate:      r.WorkDate,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		HourlyRate:    r.HourlyRate,
	}
	return req.Validate()
}

func (r *EditShiftRequest) Record(userID string) ShiftRecord {
	req := CreateShiftRequest{
		WorkplaceName: r.WorkplaceName,
		WorkDate:      r.WorkDate,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		HourlyRate:    r.HourlyRate,
		RepeatWeekly:  r.RepeatWeekly,
	}
	return req.Record(userID)
}

type ShiftResponse struct {
	ID            string  `json:"id"`
	WorkplaceName string  `json:"workplace_name"`
	WorkDate      string  `json:"work_date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	HourlyRate    int     `json:"hourly_rate"`
	IsWeeklyFixed bool    `json:"is_weekly_fixed"`
	GroupID       *string `json:"group_id,omitempty"`
}

func NewShiftResponse(rec ShiftRecord) ShiftResponse {
	return ShiftResponse{
		ID:            rec.ID,
		WorkplaceName: rec.WorkplaceName,
		WorkDate:      rec.WorkDate.Format("2006-01-02"),
		StartTime:     rec.StartTime.String(),
		EndTime:       rec.EndTime.String(),
		HourlyRate:    rec.HourlyRate,
		IsWeeklyFixed: rec.IsWeeklyFixed,
		GroupID:       rec.GroupID,
	}
}
