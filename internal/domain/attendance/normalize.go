package attendance

// NormalizeShiftTag maps raw stored values, including the legacy Korean
// ones, onto the ShiftTag enum. Anything unrecognized means "no tag".
func NormalizeShiftTag(raw string) ShiftTag {
	switch raw {
	case "day", "주간":
		return ShiftTagDay
	case "night", "야간":
		return ShiftTagNight
	default:
		return ShiftTagNone
	}
}

// NormalizeRecordType maps raw stored values onto the RecordType enum.
func NormalizeRecordType(raw string) RecordType {
	switch raw {
	case "outing", "외출":
		return RecordTypeOuting
	case "early_leave", "조퇴":
		return RecordTypeEarlyLeave
	default:
		return RecordTypeNormal
	}
}
