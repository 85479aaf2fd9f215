package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/timepick-app/timepick-backend-go/internal/domain/shift"
	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
)

// Night differential: minutes worked between 22:00 and 06:00 earn a 50%
// surcharge on top of base pay. Withholding is a flat 3.3% applied to a
// whole period at query time, never stored per shift.
const (
	NightStartMinute = 22 * 60
	NightEndMinute   = 6 * 60
)

var (
	sixty          = decimal.NewFromInt(60)
	nightSurcharge = decimal.NewFromFloat(0.5)
	taxRetention   = decimal.RequireFromString("0.967")
)

// NightMinutes counts the minutes of a shift starting at start and
// running for duration minutes (wrapping past midnight) that fall in
// the 22:00-06:00 window. The 22:00 boundary minute is inclusive, the
// 06:00 one exclusive. Closed-form interval intersection against the
// two nightly sub-windows, equivalent to walking the shift minute by
// minute.
func NightMinutes(start timeslot.ClockTime, duration int) int {
	if duration <= 0 {
		return 0
	}
	s := int(start)
	e := s + duration

	total := 0
	// The shift spans at most two calendar days, so each sub-window is
	// checked on the starting day and the next.
	for _, w := range [][2]int{
		{NightStartMinute, timeslot.MinutesPerDay},
		{0, NightEndMinute},
	} {
		for day := 0; day <= 1; day++ {
			lo := w[0] + day*timeslot.MinutesPerDay
			hi := w[1] + day*timeslot.MinutesPerDay
			total += overlap(s, e, lo, hi)
		}
	}
	return total
}

func overlap(aLo, aHi, bLo, bHi int) int {
	lo := max(aLo, bLo)
	hi := min(aHi, bHi)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// ShiftPay computes the pay for one shift: base pay for the full
// duration plus the 50% night surcharge for night minutes.
func ShiftPay(rec shift.ShiftRecord) decimal.Decimal {
	duration := rec.DurationMinutes()
	rate := decimal.NewFromInt(int64(rec.HourlyRate))

	base := rate.Mul(decimal.NewFromInt(int64(duration))).Div(sixty)

	night := NightMinutes(rec.StartTime, duration)
	nightPay := rate.
		Mul(decimal.NewFromInt(int64(night))).
		Div(sixty).
		Mul(nightSurcharge)

	return base.Add(nightPay)
}

// PeriodTotal sums the pay of every record and, when applyTax is set,
// applies the flat 3.3% withholding to the whole period.
func PeriodTotal(records []shift.ShiftRecord, applyTax bool) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(ShiftPay(rec))
	}
	if applyTax {
		total = total.Mul(taxRetention)
	}
	return total
}
