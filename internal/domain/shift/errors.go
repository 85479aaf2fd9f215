package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift record not found")
	// ErrInconsistentTransition marks a recurrence transition whose
	// delete step succeeded but whose insert step failed. Silently
	// losing a shift is a correctness risk, so this surfaces as its own
	// failure mode.
	ErrInconsistentTransition = errors.New("recurrence transition left no record for the edited date")
	ErrInvalidRequestData     = errors.New("invalid shift request data")
)
