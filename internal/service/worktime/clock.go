package worktime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// parseClock converts an "HH:MM" 24-hour string to minutes since midnight.
// Malformed or empty input reports ok=false; the caller treats the field
// as missing rather than failing the day.
func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// dateString formats a calendar day as "YYYY-MM-DD".
func dateString(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// daysInMonth returns the number of days of a calendar month.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// isWeekend reports whether the plain Gregorian date falls on Saturday or
// Sunday. Dates are already local calendar dates, so no timezone applies.
func isWeekend(year, month, day int) bool {
	wd := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
