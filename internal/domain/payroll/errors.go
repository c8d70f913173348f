package payroll

import "errors"

var (
	ErrHourlyRateMissing = errors.New("employee has no hourly rate")
	ErrNotHourlyPaid     = errors.New("payroll summary is only defined for hourly-paid employees")
)
