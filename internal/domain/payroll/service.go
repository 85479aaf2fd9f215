package payroll

import "context"

type Service interface {
	// MonthlySummary totals the caller's shifts for the month, with the
	// flat withholding applied when requested.
	MonthlySummary(ctx context.Context, yearMonth string, applyTax bool) (MonthlySummaryResponse, error)
}
