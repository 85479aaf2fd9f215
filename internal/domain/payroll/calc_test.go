package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timepick-app/timepick-backend-go/internal/domain/shift"
	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
)

func clock(t *testing.T, s string) timeslot.ClockTime {
	t.Helper()
	c, err := timeslot.ParseClock(s)
	require.NoError(t, err)
	return c
}

func rec(t *testing.T, start, end string, rate int) shift.ShiftRecord {
	t.Helper()
	return shift.ShiftRecord{
		StartTime:  clock(t, start),
		EndTime:    clock(t, end),
		HourlyRate: rate,
	}
}

// Reference implementation: walk the shift minute by minute, exactly as
// the closed form must behave on every boundary.
func nightMinutesWalk(start timeslot.ClockTime, duration int) int {
	night := 0
	for i := 0; i < duration; i++ {
		hour := ((int(start) + i) % timeslot.MinutesPerDay) / 60
		if hour >= 22 || hour < 6 {
			night++
		}
	}
	return night
}

func TestNightMinutesMatchesMinuteWalk(t *testing.T) {
	// Every half-hour start against a spread of durations, covering
	// both boundaries and full wraparound.
	for start := 0; start < timeslot.MinutesPerDay; start += 30 {
		for _, duration := range []int{0, 1, 29, 30, 59, 60, 240, 360, 480, 720, 1439, 1440} {
			want := nightMinutesWalk(timeslot.ClockTime(start), duration)
			got := NightMinutes(timeslot.ClockTime(start), duration)
			require.Equal(t, want, got, "start=%d duration=%d", start, duration)
		}
	}
}

func TestNightMinutesBoundaries(t *testing.T) {
	cases := []struct {
		start    string
		duration int
		want     int
	}{
		{"22:00", 60, 60},   // 22:00 is inclusive
		{"21:59", 1, 0},     // minute before the window
		{"05:59", 1, 1},     // last night minute
		{"06:00", 60, 0},    // 06:00 is exclusive
		{"21:00", 360, 300}, // 21:00-03:00, wraps midnight
		{"09:00", 480, 0},   // plain day shift
		{"23:00", 1440, 480}, // full 24h loop covers the whole window
	}
	for _, c := range cases {
		got := NightMinutes(clock(t, c.start), c.duration)
		assert.Equal(t, c.want, got, "start=%s duration=%d", c.start, c.duration)
	}
}

func TestShiftPayDayShift(t *testing.T) {
	pay := ShiftPay(rec(t, "09:00", "17:00", 10000))
	assert.True(t, pay.Equal(decimal.NewFromInt(80000)), "got %s", pay)
}

func TestShiftPayNightCrossingMidnight(t *testing.T) {
	// 21:00-03:00 at 10000/h: 6h base 60000 plus 300 night minutes at
	// half rate = 25000.
	pay := ShiftPay(rec(t, "21:00", "03:00", 10000))
	assert.True(t, pay.Equal(decimal.NewFromInt(85000)), "got %s", pay)
}

func TestShiftPayZeroDuration(t *testing.T) {
	pay := ShiftPay(rec(t, "09:00", "09:00", 10000))
	assert.True(t, pay.IsZero())
}

func TestPeriodTotalWithholding(t *testing.T) {
	records := []shift.ShiftRecord{rec(t, "09:00", "17:00", 10000)}

	gross := PeriodTotal(records, false)
	assert.True(t, gross.Equal(decimal.NewFromInt(80000)), "got %s", gross)

	net := PeriodTotal(records, true)
	assert.True(t, net.Equal(decimal.NewFromInt(77360)), "got %s", net)
}

func TestPeriodTotalSumsShifts(t *testing.T) {
	records := []shift.ShiftRecord{
		rec(t, "09:00", "17:00", 10000),
		rec(t, "21:00", "03:00", 10000),
	}
	total := PeriodTotal(records, false)
	assert.True(t, total.Equal(decimal.NewFromInt(165000)), "got %s", total)
}

func TestPeriodTotalEmpty(t *testing.T) {
	assert.True(t, PeriodTotal(nil, true).IsZero())
	assert.True(t, PeriodTotal(nil, false).IsZero())
}
