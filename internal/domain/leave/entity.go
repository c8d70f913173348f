package leave

import "time"

// Request is an approved-or-pending leave request spanning an inclusive
// date interval. Dates are "YYYY-MM-DD" strings so interval membership is
// a plain string comparison.
type Request struct {
	ID         string
	EmployeeID string
	StartDate  string
	EndDate    string
	Kind       Kind
	Status     Status
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Kind classifies an approved absence. Legacy documents carry Korean
// labels (연차, 오전반차, 오후반차, 휴직); repositories normalize to this enum.
type Kind string

const (
	KindAnnual         Kind = "annual"
	KindHalfDayAM      Kind = "half_day_am"
	KindHalfDayPM      Kind = "half_day_pm"
	KindUnpaidExtended Kind = "unpaid_extended" // 휴직: suppresses attendance evaluation entirely
)

// HalfDay reports whether the kind consumes half an annual-leave day.
func (k Kind) HalfDay() bool {
	return k == KindHalfDayAM || k == KindHalfDayPM
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved" // 승인
	StatusRejected Status = "rejected"
)

// Covers reports whether the request interval includes the given
// "YYYY-MM-DD" date, inclusive on both ends.
func (r *Request) Covers(date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}
