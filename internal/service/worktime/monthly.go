package worktime

import (
	"context"
	"fmt"

	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

// MonthlyStats implements worktime.Service.
func (e *Engine) MonthlyStats(ctx context.Context, employeeID string, year, month int) (worktime.MonthlyStats, error) {
	key := statsKey{EmployeeID: employeeID, Year: year, Month: month}
	return e.cache.getOrCompute(key, func() (worktime.MonthlyStats, error) {
		return e.computeMonthlyStats(ctx, employeeID, year, month)
	})
}

// Invalidate implements worktime.Service.
func (e *Engine) Invalidate(employeeID string, year, month int) {
	e.cache.invalidate(statsKey{EmployeeID: employeeID, Year: year, Month: month})
}

// InvalidateAll implements worktime.Service.
func (e *Engine) InvalidateAll() {
	e.cache.invalidateAll()
}

// Recomputes reports how many month aggregations have actually run.
func (e *Engine) Recomputes() int64 {
	return e.cache.computeCount()
}

func (e *Engine) computeMonthlyStats(ctx context.Context, employeeID string, year, month int) (worktime.MonthlyStats, error) {
	emp, err := e.lookupEmployee(ctx, employeeID)
	if err != nil {
		return worktime.MonthlyStats{}, err
	}

	records, err := e.records.ListByEmployeeAndMonth(ctx, employeeID, year, month)
	if err != nil {
		return worktime.MonthlyStats{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	recordByDate := make(map[string]int, len(records))
	for i := range records {
		recordByDate[records[i].Date] = i
	}

	leaves, err := e.leaves.ListApprovedByEmployee(ctx, employeeID)
	if err != nil {
		return worktime.MonthlyStats{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	holidays, err := e.holidays.ListByYear(ctx, year)
	if err != nil {
		return worktime.MonthlyStats{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Date] = true
	}

	stats := worktime.MonthlyStats{EmployeeID: employeeID, Year: year, Month: month}

	for day := 1; day <= daysInMonth(year, month); day++ {
		date := dateString(year, month, day)

		dayCtx := worktime.DayContext{
			Weekend: isWeekend(year, month, day),
			Holiday: holidaySet[date],
			Leave:   leaveCoverage(leaves, date),
		}

		var rec *attendance.Record
		if i, ok := recordByDate[date]; ok {
			rec = &records[i]
		}

		res := e.classify(rec, dayCtx, e.resolveShift(emp, rec), date)
		foldDay(&stats, res)
	}

	return stats, nil
}

// foldDay accumulates one classified day into the running month counters.
func foldDay(stats *worktime.MonthlyStats, res worktime.DayResult) {
	if !res.Recorded {
		return
	}

	switch res.Status {
	case worktime.StatusAbsent:
		stats.AbsenceDays++
	case worktime.StatusAnnualLeave:
		if res.HalfDay {
			stats.AnnualLeaveDays += 0.5
		} else {
			stats.AnnualLeaveDays++
		}
	case worktime.StatusLate:
		stats.LateDays++
	case worktime.StatusEarlyLeave:
		stats.EarlyLeaveDays++
	case worktime.StatusLateEarlyLeave:
		stats.LateDays++
		stats.EarlyLeaveDays++
	}

	if res.Outing {
		stats.OutingDays++
	}

	worked := res.Minutes.Total()
	if worked > 0 {
		stats.WorkedDays++
		stats.TotalMinutes += worked
		stats.Minutes.Add(res.Minutes)
	}
}
