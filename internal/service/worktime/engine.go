package worktime

import (
	"fmt"

	"github.com/kmsteel/hr-backend-go/internal/config"
	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/holiday"
	"github.com/kmsteel/hr-backend-go/internal/domain/leave"
	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

// shiftBands holds one shift's thresholds in minutes since midnight of the
// check-in day. For the night shift, boundaries that fall past midnight are
// already shifted by a full day so comparisons stay monotonic.
type shiftBands struct {
	regularStart int // before this is early work
	regularEnd   int // at or after this is overtime
	lateAfter    int // strictly after this check-in is late
	leaveBefore  int // before this check-out is an early leave
}

type thresholds struct {
	dayDetectFrom  int // hours, inclusive
	dayDetectUntil int // hours, exclusive
	day            shiftBands
	night          shiftBands
	nightBandStart int // statutory night band, minutes since midnight
	nightBandEnd   int
}

// Engine implements worktime.Service. It is read-only over its
// repositories; the monthly-stats cache is its only mutable state.
type Engine struct {
	employees employee.EmployeeRepository
	records   attendance.RecordRepository
	leaves    leave.RequestRepository
	holidays  holiday.Calendar

	th    thresholds
	cache *statsCache
}

var _ worktime.Service = (*Engine)(nil)

func NewEngine(
	employeeRepo employee.EmployeeRepository,
	recordRepo attendance.RecordRepository,
	leaveRepo leave.RequestRepository,
	holidayCal holiday.Calendar,
	cfg config.WorktimeConfig,
) (*Engine, error) {
	th, err := parseThresholds(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid worktime configuration: %w", err)
	}

	return &Engine{
		employees: employeeRepo,
		records:   recordRepo,
		leaves:    leaveRepo,
		holidays:  holidayCal,
		th:        th,
		cache:     newStatsCache(),
	}, nil
}

func parseThresholds(cfg config.WorktimeConfig) (thresholds, error) {
	th := thresholds{
		dayDetectFrom:  cfg.DayDetectFromHour,
		dayDetectUntil: cfg.DayDetectUntilHour,
	}

	clocks := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"DAY_SHIFT_START", cfg.DayShiftStart, &th.day.regularStart},
		{"DAY_SHIFT_END", cfg.DayShiftEnd, &th.day.regularEnd},
		{"DAY_LATE_AFTER", cfg.DayLateAfter, &th.day.lateAfter},
		{"DAY_LEAVE_BEFORE", cfg.DayLeaveBefore, &th.day.leaveBefore},
		{"NIGHT_SHIFT_START", cfg.NightShiftStart, &th.night.regularStart},
		{"NIGHT_SHIFT_END", cfg.NightShiftEnd, &th.night.regularEnd},
		{"NIGHT_LATE_AFTER", cfg.NightLateAfter, &th.night.lateAfter},
		{"NIGHT_LEAVE_BEFORE", cfg.NightLeaveBefore, &th.night.leaveBefore},
		{"NIGHT_BAND_START", cfg.NightBandStart, &th.nightBandStart},
		{"NIGHT_BAND_END", cfg.NightBandEnd, &th.nightBandEnd},
	}
	for _, c := range clocks {
		min, ok := parseClock(c.raw)
		if !ok {
			return thresholds{}, fmt.Errorf("%s: %q is not an HH:MM clock", c.name, c.raw)
		}
		*c.dst = min
	}

	// The night shift spans midnight: boundaries at or before the shift
	// start belong to the next calendar day.
	if th.night.regularEnd <= th.night.regularStart {
		th.night.regularEnd += minutesPerDay
	}
	if th.night.leaveBefore <= th.night.lateAfter {
		th.night.leaveBefore += minutesPerDay
	}

	return th, nil
}

// bands selects the threshold set for a resolved shift.
func (t thresholds) bands(shift worktime.Shift) shiftBands {
	if shift == worktime.ShiftNight {
		return t.night
	}
	return t.day
}

// inNightBand reports whether a clock minute (0..1439) falls inside the
// statutory night-premium band, which may cross midnight.
func (t thresholds) inNightBand(clock int) bool {
	if t.nightBandStart <= t.nightBandEnd {
		return clock >= t.nightBandStart && clock < t.nightBandEnd
	}
	return clock >= t.nightBandStart || clock < t.nightBandEnd
}
