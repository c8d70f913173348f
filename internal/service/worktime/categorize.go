package worktime

import (
	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

// categorize partitions the worked interval [in, out) into pay categories.
// in and out are minutes since midnight of the check-in day; overnight
// intervals arrive with out already shifted past 1440.
//
// Every minute is flagged against the resolved shift's bands and the
// statutory night band, then folded into exactly one bucket, so buckets
// are disjoint and always sum to out-in.
func (e *Engine) categorize(in, out int, shift worktime.Shift, restDay bool) worktime.CategoryMinutes {
	var c worktime.CategoryMinutes
	if out <= in {
		return c
	}

	bands := e.th.bands(shift)
	for m := in; m < out; m++ {
		early := m < bands.regularStart
		overtime := m >= bands.regularEnd
		night := e.th.inNightBand(m % minutesPerDay)

		switch {
		// Rest-day work: night folds into the plain holiday bucket,
		// overtime (with or without night) into holiday overtime, and
		// early arrival into early holiday.
		case restDay && early:
			c.EarlyHoliday++
		case restDay && overtime:
			c.HolidayOvertime++
		case restDay:
			c.Holiday++

		case overtime && night:
			c.OvertimeNight++
		case overtime:
			c.Overtime++
		case night:
			c.Night++
		case early:
			c.Early++
		default:
			c.Regular++
		}
	}
	return c
}
