package attendance

import "time"

// Record is one employee-day of raw attendance as the collection devices
// and the editing UI produce it. Dates are "YYYY-MM-DD" and clock fields
// are "HH:MM" local 24-hour strings; either clock may be empty.
type Record struct {
	ID         string
	EmployeeID string
	Date       string
	CheckIn    string
	CheckOut   string
	ShiftTag   ShiftTag
	RecordType RecordType
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ShiftTag is the explicit per-record shift marker. Legacy documents store
// 주간/야간; repositories normalize to this enum.
type ShiftTag string

const (
	ShiftTagNone  ShiftTag = ""
	ShiftTagDay   ShiftTag = "day"
	ShiftTagNight ShiftTag = "night"
)

// RecordType marks the special presence sub-modes an editor can set.
type RecordType string

const (
	RecordTypeNormal     RecordType = ""
	RecordTypeOuting     RecordType = "outing"      // 외출
	RecordTypeEarlyLeave RecordType = "early_leave" // 조퇴
)
