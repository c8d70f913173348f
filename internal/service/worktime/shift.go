package worktime

import (
	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

// ResolveShift decides whether a day is evaluated under day-shift or
// night-shift thresholds. Pure and deterministic; the monthly cache
// depends on that.
//
// Priority chain: explicit per-record tag, then clock-based auto-detection
// for eligible production workers, then the declared work type, then day.
func ResolveShift(emp *employee.Employee, rec *attendance.Record, dayDetectFrom, dayDetectUntil int) worktime.Shift {
	if rec != nil {
		switch rec.ShiftTag {
		case attendance.ShiftTagDay:
			return worktime.ShiftDay
		case attendance.ShiftTagNight:
			return worktime.ShiftNight
		}
	}

	if emp == nil {
		return worktime.ShiftDay
	}

	if emp.ShiftAutoDetectEligible() && rec != nil {
		if in, ok := parseClock(rec.CheckIn); ok {
			hour := in / 60
			if hour >= dayDetectFrom && hour < dayDetectUntil {
				return worktime.ShiftDay
			}
			return worktime.ShiftNight
		}
	}

	switch emp.WorkType {
	case employee.WorkTypeNight:
		return worktime.ShiftNight
	default:
		// Rotating workers without a tag or a usable check-in clock are
		// evaluated as day shift.
		return worktime.ShiftDay
	}
}

func (e *Engine) resolveShift(emp *employee.Employee, rec *attendance.Record) worktime.Shift {
	return ResolveShift(emp, rec, e.th.dayDetectFrom, e.th.dayDetectUntil)
}
