package application

import (
	"github.com/timepick-app/timepick-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	JobID string `json:"job_id"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.JobID) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_id",
			Message: "job_id is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AppliedJobResponse struct {
	ID        string `json:"id"`
	JobID     string `json:"job_id"`
	JobTitle  string `json:"job_title,omitempty"`
	Workplace string `json:"workplace,omitempty"`
	AppliedAt string `json:"applied_at"`
}
