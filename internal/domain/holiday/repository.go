package holiday

import "context"

// Calendar answers public-holiday membership for exact dates.
type Calendar interface {
	// IsHoliday reports whether the "YYYY-MM-DD" date is a public holiday
	IsHoliday(ctx context.Context, date string) (bool, error)

	// ListByYear retrieves all holidays of a year
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
}
