package payroll

import (
	"github.com/kmsteel/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MonthlySummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CategoryPay is the pay computed for one category: hours worked, the
// multiplier applied and the resulting amount.
type CategoryPay struct {
	Hours      decimal.Decimal `json:"hours"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Amount     decimal.Decimal `json:"amount"`
}

// MonthlySummary is the pay-relevant view of one employee-month.
type MonthlySummary struct {
	EmployeeID   string                 `json:"employee_id"`
	EmployeeName string                 `json:"employee_name,omitempty"`
	Year         int                    `json:"year"`
	Month        int                    `json:"month"`
	HourlyRate   decimal.Decimal        `json:"hourly_rate"`
	Categories   map[string]CategoryPay `json:"categories"`
	TotalHours   decimal.Decimal        `json:"total_hours"`
	TotalPay     decimal.Decimal        `json:"total_pay"`
}
