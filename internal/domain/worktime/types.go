package worktime

import (
	"github.com/kmsteel/hr-backend-go/internal/domain/leave"
)

// Shift selects which lateness and band thresholds apply to a day.
type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)

// Status is the single day-level attendance verdict.
type Status string

const (
	StatusPresent        Status = "present"
	StatusLate           Status = "late"
	StatusEarlyLeave     Status = "early_leave"
	StatusLateEarlyLeave Status = "late_early_leave"
	StatusAbsent         Status = "absent"
	StatusWorking        Status = "working" // checked in, not yet out
	StatusAnnualLeave    Status = "annual_leave"
	StatusOther          Status = "other"
)

// DayContext is the calendar verdict for one employee-day.
type DayContext struct {
	Weekend bool
	Holiday bool
	Leave   *leave.Kind
}

// RestDay reports whether lateness rules are suppressed for the day.
func (c DayContext) RestDay() bool {
	return c.Weekend || c.Holiday
}

// CategoryMinutes partitions a day's worked time into pay categories.
// Buckets are disjoint: no minute is counted twice, and Total always
// equals the elapsed worked minutes of the day.
type CategoryMinutes struct {
	Regular         int `json:"regular"`
	Early           int `json:"early"`
	Overtime        int `json:"overtime"`
	Night           int `json:"night"`
	OvertimeNight   int `json:"overtime_night"`
	Holiday         int `json:"holiday"`
	HolidayOvertime int `json:"holiday_overtime"`
	EarlyHoliday    int `json:"early_holiday"`
}

// Total returns the summed worked minutes across all buckets.
func (c CategoryMinutes) Total() int {
	return c.Regular + c.Early + c.Overtime + c.Night + c.OvertimeNight +
		c.Holiday + c.HolidayOvertime + c.EarlyHoliday
}

// Add folds another day's buckets into the receiver.
func (c *CategoryMinutes) Add(o CategoryMinutes) {
	c.Regular += o.Regular
	c.Early += o.Early
	c.Overtime += o.Overtime
	c.Night += o.Night
	c.OvertimeNight += o.OvertimeNight
	c.Holiday += o.Holiday
	c.HolidayOvertime += o.HolidayOvertime
	c.EarlyHoliday += o.EarlyHoliday
}

// DayResult is the classified outcome for one employee-day.
// Recorded is false when the day yields no status at all: rest days
// without attendance and days covered by extended unpaid leave.
type DayResult struct {
	Date     string          `json:"date"`
	Status   Status          `json:"status,omitempty"`
	Recorded bool            `json:"recorded"`
	Shift    Shift           `json:"shift"`
	HalfDay  bool            `json:"half_day,omitempty"` // annual leave consumed as a half day
	Outing   bool            `json:"outing,omitempty"`
	Minutes  CategoryMinutes `json:"minutes"`
}

// MonthlyStats is the per-employee month aggregate of day counts and
// pay-category minute sums.
type MonthlyStats struct {
	EmployeeID      string          `json:"employee_id"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	WorkedDays      int             `json:"worked_days"`
	AnnualLeaveDays float64         `json:"annual_leave_days"` // half days count 0.5
	AbsenceDays     int             `json:"absence_days"`
	LateDays        int             `json:"late_days"`
	EarlyLeaveDays  int             `json:"early_leave_days"`
	OutingDays      int             `json:"outing_days"`
	TotalMinutes    int             `json:"total_minutes"`
	Minutes         CategoryMinutes `json:"minutes"`
}
