package timeslot

import "errors"

var ErrSlotOutOfRange = errors.New("time slot index outside the weekly grid")
