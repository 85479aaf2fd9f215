package http

import (
	"net/http"
	"time"

	"github.com/timepick-app/timepick-backend-go/internal/domain/payroll"
	"github.com/timepick-app/timepick-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetMonthlySummary implements PayrollHandler. Withholding is a display
// option toggled per request, never baked into stored records.
func (h *payrollHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	applyTax := r.URL.Query().Get("apply_tax") == "true"

	result, err := h.payrollService.MonthlySummary(r.Context(), month, applyTax)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
