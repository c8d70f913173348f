package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	EmployeeCode  string
	FullName      string
	Department    string
	SubDepartment string
	Position      string
	PayType       PayType
	WorkType      WorkType
	HourlyRate    *decimal.Decimal
	HireDate      time.Time
	ResignDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PayType string

const (
	PayTypeHourly   PayType = "hourly"
	PayTypeSalaried PayType = "salaried"
)

// WorkType is the declared shift pattern. Legacy documents carry it under
// several field names and values; repositories normalize to this enum
// before the engine ever sees a record.
type WorkType string

const (
	WorkTypeDay      WorkType = "day"
	WorkTypeNight    WorkType = "night"
	WorkTypeRotating WorkType = "rotating"
)

// Production sub-departments whose hourly workers rotate between day and
// night crews. Only these are eligible for shift auto-detection.
var shiftDetectSubDepartments = map[string]bool{
	"열":     true,
	"표면":    true,
	"구부":    true,
	"인발":    true,
	"교정·절단": true,
	"검사":    true,
}

// ShiftAutoDetectEligible reports whether the employee's shift may be
// inferred from the check-in clock instead of the declared work type.
func (e *Employee) ShiftAutoDetectEligible() bool {
	return e.PayType == PayTypeHourly && shiftDetectSubDepartments[e.SubDepartment]
}
