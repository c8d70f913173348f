package worktime

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/leave"
	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

// dayFacts is everything the status rules may inspect for one day.
// Clock fields are pre-parsed once; a malformed "HH:MM" string behaves
// exactly like a missing one.
type dayFacts struct {
	rec   *attendance.Record
	ctx   worktime.DayContext
	shift worktime.Shift
	date  string

	hasIn  bool
	hasOut bool
	in     int // minutes since midnight
	out    int // minutes since midnight of the check-in day; overnight adds a day
}

// statusRule is one guard/result pair of the status decision table.
// Rules are evaluated in order and the first applicable rule wins, so the
// precedence is auditable rule by rule.
type statusRule struct {
	name    string
	applies func(f dayFacts) bool
	resolve func(e *Engine, f dayFacts) worktime.DayResult
}

var statusRules = []statusRule{
	{
		// 휴직: the employee is not expected to attend, so the day yields
		// no status at all, not even an absence.
		name: "unpaid extended leave",
		applies: func(f dayFacts) bool {
			return f.ctx.Leave != nil && *f.ctx.Leave == leave.KindUnpaidExtended
		},
		resolve: func(e *Engine, f dayFacts) worktime.DayResult {
			return worktime.DayResult{Date: f.date, Shift: f.shift}
		},
	},
	{
		name: "half-day annual leave",
		applies: func(f dayFacts) bool {
			return f.ctx.Leave != nil && f.ctx.Leave.HalfDay()
		},
		resolve: func(e *Engine, f dayFacts) worktime.DayResult {
			res := worktime.DayResult{Date: f.date, Shift: f.shift, Recorded: true, Status: worktime.StatusAnnualLeave, HalfDay: true}
			res.Minutes = e.workedMinutes(f)
			return res
		},
	},
	{
		name: "full-day annual leave",
		applies: func(f dayFacts) bool {
			return f.ctx.Leave != nil && *f.ctx.Leave == leave.KindAnnual
		},
		resolve: func(e *Engine, f dayFacts) worktime.DayResult {
			return worktime.DayResult{Date: f.date, Shift: f.shift, Recorded: true, Status: worktime.StatusAnnualLeave}
		},
	},
	{
		// Outings and marked early departures are sub-modes of presence.
		name: "outing or marked early departure",
		applies: func(f dayFacts) bool {
			return f.rec != nil && (f.rec.RecordType == attendance.RecordTypeOuting ||
				f.rec.RecordType == attendance.RecordTypeEarlyLeave)
		},
		resolve: func(e *Engine, f dayFacts) worktime.DayResult {
			res := worktime.DayResult{Date: f.date, Shift: f.shift, Recorded: true, Status: worktime.StatusPresent}
			res.Outing = f.rec.RecordType == attendance.RecordTypeOuting
			res.Minutes = e.workedMinutes(f)
			return res
		},
	},
	{
		// On rest days any attendance is holiday work, never late or an
		// early leave; no attendance is simply a rest day, not an absence.
		name: "weekend or public holiday",
		applies: func(f dayFacts) bool {
			return f.ctx.RestDay()
		},
		resolve: func(e *Engine, f dayFacts) worktime.DayResult {
			if !f.hasIn {
				return worktime.DayResult{Date: f.date, Shift: f.shift}
			}
			res := worktime.DayResult{Date: f.date, Shift: f.shift, Recorded: true, Status: worktime.StatusPresent}
			res.Minutes = e.workedMinutes(f)
			return res
		},
	},
	{
		name: "no attendance at all",
		applies: func(f dayFacts) bool {
			return !f.hasIn && !f.hasOut
		},
		resolve: func(e *Engine, f dayFacts) worktime.DayResult {
			return worktime.DayResult{Date: f.date, Shift: f.shift, Recorded: true, Status: worktime.StatusAbsent}
		},
	},
	{
		name: "open shift",
		applies: func(f dayFacts) bool {
			return f.hasIn && !f.hasOut
		},
		resolve: func(e *Engine, f dayFacts) worktime.DayResult {
			return worktime.DayResult{Date: f.date, Shift: f.shift, Recorded: true, Status: worktime.StatusWorking}
		},
	},
	{
		name: "worked day",
		applies: func(f dayFacts) bool {
			return f.hasIn && f.hasOut
		},
		resolve: func(e *Engine, f dayFacts) worktime.DayResult {
			bands := e.th.bands(f.shift)
			late := f.in > bands.lateAfter
			early := f.out < bands.leaveBefore

			status := worktime.StatusPresent
			switch {
			case late && early:
				status = worktime.StatusLateEarlyLeave
			case late:
				status = worktime.StatusLate
			case early:
				status = worktime.StatusEarlyLeave
			}

			res := worktime.DayResult{Date: f.date, Shift: f.shift, Recorded: true, Status: status}
			res.Minutes = e.workedMinutes(f)
			return res
		},
	},
	{
		name: "fallback",
		applies: func(f dayFacts) bool {
			return true
		},
		resolve: func(e *Engine, f dayFacts) worktime.DayResult {
			return worktime.DayResult{Date: f.date, Shift: f.shift, Recorded: true, Status: worktime.StatusOther}
		},
	},
}

// classify runs the status decision table for one day.
func (e *Engine) classify(rec *attendance.Record, dayCtx worktime.DayContext, shift worktime.Shift, date string) worktime.DayResult {
	f := dayFacts{rec: rec, ctx: dayCtx, shift: shift, date: date}
	if rec != nil {
		f.in, f.hasIn = parseClock(rec.CheckIn)
		f.out, f.hasOut = parseClock(rec.CheckOut)
		if f.hasIn && f.hasOut && f.out < f.in {
			// Check-out past midnight belongs to the next calendar day.
			f.out += minutesPerDay
		}
	}

	for _, rule := range statusRules {
		if rule.applies(f) {
			return rule.resolve(e, f)
		}
	}
	// Unreachable: the fallback rule always applies.
	return worktime.DayResult{Date: date, Shift: shift}
}

// workedMinutes categorizes the worked interval when both clocks are
// usable and returns zero minutes otherwise.
func (e *Engine) workedMinutes(f dayFacts) worktime.CategoryMinutes {
	if !f.hasIn || !f.hasOut {
		return worktime.CategoryMinutes{}
	}
	return e.categorize(f.in, f.out, f.shift, f.ctx.RestDay())
}

// ClassifyDay implements worktime.Service.
func (e *Engine) ClassifyDay(ctx context.Context, employeeID string, year, month, day int) (worktime.DayResult, error) {
	date := dateString(year, month, day)

	dayCtx, err := e.DayContext(ctx, employeeID, year, month, day)
	if err != nil {
		return worktime.DayResult{}, err
	}

	rec, err := e.records.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return worktime.DayResult{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	emp, err := e.lookupEmployee(ctx, employeeID)
	if err != nil {
		return worktime.DayResult{}, err
	}

	return e.classify(rec, dayCtx, e.resolveShift(emp, rec), date), nil
}

// lookupEmployee fetches the employee, degrading a missing directory
// entry to nil so classification falls back to day-shift defaults.
func (e *Engine) lookupEmployee(ctx context.Context, employeeID string) (*employee.Employee, error) {
	emp, err := e.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &emp, nil
}
