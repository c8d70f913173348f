package payroll

import "context"

// Service turns monthly work-hour aggregates into pay amounts.
type Service interface {
	// MonthlySummary computes per-category and total pay for one
	// hourly-paid employee-month
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummary, error)
}
