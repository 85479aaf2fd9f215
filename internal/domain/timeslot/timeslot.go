package timeslot

// The weekly availability grid: 7 days x 36 half-hour buckets starting
// at 07:00, flattened into a single index. The grid is laid out
// row-major by bucket, so index = day + bucket*7.
const (
	DaysPerWeek   = 7
	BucketsPerDay = 36
	SlotCount     = DaysPerWeek * BucketsPerDay // 252
	BucketMinutes = 30
	DayStartHour  = 7
)

// Index identifies one (day, bucket) cell of the weekly grid.
type Index int

// Encode converts a (day, bucket) pair into a flat slot index.
// day is 0=Monday..6=Sunday, bucket counts half hours from 07:00.
func Encode(day, bucket int) (Index, error) {
	if day < 0 || day >= DaysPerWeek {
		return 0, ErrSlotOutOfRange
	}
	if bucket < 0 || bucket >= BucketsPerDay {
		return 0, ErrSlotOutOfRange
	}
	return Index(day + bucket*DaysPerWeek), nil
}

// Decode splits a flat slot index back into its (day, bucket) pair.
func Decode(idx Index) (day, bucket int, err error) {
	if idx < 0 || idx >= SlotCount {
		return 0, 0, ErrSlotOutOfRange
	}
	return int(idx) % DaysPerWeek, int(idx) / DaysPerWeek, nil
}

// Valid reports whether idx falls inside the grid.
func (idx Index) Valid() bool {
	return idx >= 0 && idx < SlotCount
}

// BucketStart returns the wall-clock time at which the bucket begins.
// Late buckets represent times past midnight, so the result wraps
// modulo 24h.
func BucketStart(bucket int) (ClockTime, error) {
	if bucket < 0 || bucket >= BucketsPerDay {
		return 0, ErrSlotOutOfRange
	}
	minutes := (DayStartHour*60 + bucket*BucketMinutes) % MinutesPerDay
	return ClockTime(minutes), nil
}
