package availability

import "errors"

var (
	ErrInvalidSlotIndex = errors.New("availability contains an invalid slot index")
	ErrUserIDRequired   = errors.New("user ID is required")
)
