package payroll

import (
	"context"
	"fmt"

	"github.com/timepick-app/timepick-backend-go/internal/domain/payroll"
	"github.com/timepick-app/timepick-backend-go/internal/domain/shift"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/jwt"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/validator"
)

type payrollServiceImpl struct {
	shiftRepo shift.Repository
}

func NewPayrollService(shiftRepo shift.Repository) payroll.Service {
	return &payrollServiceImpl{shiftRepo: shiftRepo}
}

// MonthlySummary implements payroll.Service. The tax switch is a
// query-time global; individual shift lines always show untaxed pay.
func (s *payrollServiceImpl) MonthlySummary(ctx context.Context, yearMonth string, applyTax bool) (payroll.MonthlySummaryResponse, error) {
	month, ok := validator.IsValidMonth(yearMonth)
	if !ok {
		return payroll.MonthlySummaryResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be a valid YYYY-MM month",
		}}
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, err
	}

	records, err := s.shiftRepo.ListByMonth(ctx, userID, month.Month(), month.Year())
	if err != nil {
		return payroll.MonthlySummaryResponse{}, fmt.Errorf("failed to list shifts for payroll: %w", err)
	}

	shifts := make([]payroll.ShiftPayResponse, 0, len(records))
	for _, rec := range records {
		duration := rec.DurationMinutes()
		shifts = append(shifts, payroll.ShiftPayResponse{
			Shift:        shift.NewShiftResponse(rec),
			Minutes:      duration,
			NightMinutes: payroll.NightMinutes(rec.StartTime, duration),
			Pay:          payroll.ShiftPay(rec),
		})
	}

	return payroll.MonthlySummaryResponse{
		Month:      yearMonth,
		TaxApplied: applyTax,
		Total:      payroll.PeriodTotal(records, applyTax),
		Shifts:     shifts,
	}, nil
}
