package worktime

import (
	"context"
	"fmt"

	"github.com/kmsteel/hr-backend-go/internal/domain/leave"
	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

// DayContext implements worktime.Service.
func (e *Engine) DayContext(ctx context.Context, employeeID string, year, month, day int) (worktime.DayContext, error) {
	date := dateString(year, month, day)

	isHoliday, err := e.holidays.IsHoliday(ctx, date)
	if err != nil {
		return worktime.DayContext{}, fmt.Errorf("failed to check holiday calendar: %w", err)
	}

	leaves, err := e.leaves.ListApprovedByEmployee(ctx, employeeID)
	if err != nil {
		return worktime.DayContext{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	return worktime.DayContext{
		Weekend: isWeekend(year, month, day),
		Holiday: isHoliday,
		Leave:   leaveCoverage(leaves, date),
	}, nil
}

// leaveCoverage returns the kind of the first approved request covering
// the date, or nil when none does.
func leaveCoverage(leaves []leave.Request, date string) *leave.Kind {
	for i := range leaves {
		if leaves[i].Covers(date) {
			kind := leaves[i].Kind
			return &kind
		}
	}
	return nil
}
