package timeslot

import (
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day expressed as minutes since
// midnight, in [0, 1440). Shift start and end times use this type;
// an end numerically earlier than its start means the shift crosses
// midnight.
type ClockTime int

// ParseClock parses a "HH:MM" string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return ClockTime(hour*60 + minute), nil
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
