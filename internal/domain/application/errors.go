package application

import "errors"

var (
	ErrAlreadyApplied      = errors.New("already applied to this job posting")
	ErrApplicationNotFound = errors.New("job application not found")
)
