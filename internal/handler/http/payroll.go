package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kmsteel/hr-backend-go/internal/domain/payroll"
	"github.com/kmsteel/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// MonthlySummary implements PayrollHandler.
func (h *payrollHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	req := payroll.MonthlySummaryRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Year:       year,
		Month:      month,
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.MonthlySummary(r.Context(), req)
	if err != nil {
		slog.Error("Failed to compute payroll summary", "error", err,
			"employee_id", req.EmployeeID, "year", year, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
