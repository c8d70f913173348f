package worktime

import "context"

// Service is the attendance classification and aggregation engine.
// All methods are read-only over the underlying repositories; the only
// internal state is the monthly-stats memoization cache, which callers
// must invalidate after mutating attendance data for a month.
type Service interface {
	// DayContext resolves weekend, public holiday and approved-leave
	// coverage for one employee-day
	DayContext(ctx context.Context, employeeID string, year, month, day int) (DayContext, error)

	// ClassifyDay produces the day's status label and pay-category minutes
	ClassifyDay(ctx context.Context, employeeID string, year, month, day int) (DayResult, error)

	// MonthlyStats aggregates all days of a month, memoized per
	// (employee, year, month)
	MonthlyStats(ctx context.Context, employeeID string, year, month int) (MonthlyStats, error)

	// Invalidate drops the cached stats for one employee-month
	Invalidate(employeeID string, year, month int)

	// InvalidateAll drops every cached entry
	InvalidateAll()
}
