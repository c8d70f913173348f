package holiday

// Holiday is one public-holiday date, externally sourced (the lunar-derived
// ones arrive already resolved to Gregorian dates).
type Holiday struct {
	Date string // "YYYY-MM-DD"
	Name string
}
