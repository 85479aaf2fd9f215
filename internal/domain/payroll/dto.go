package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/timepick-app/timepick-backend-go/internal/domain/shift"
)

type ShiftPayResponse struct {
	Shift        shift.ShiftResponse `json:"shift"`
	Minutes      int                 `json:"minutes"`
	NightMinutes int                 `json:"night_minutes"`
	Pay          decimal.Decimal     `json:"pay"`
}

type MonthlySummaryResponse struct {
	Month      string             `json:"month"` // YYYY-MM
	TaxApplied bool               `json:"tax_applied"`
	Total      decimal.Decimal    `json:"total"`
	Shifts     []ShiftPayResponse `json:"shifts"`
}
