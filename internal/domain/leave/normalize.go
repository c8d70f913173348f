package leave

// NormalizeKind maps raw stored values, including the legacy Korean ones,
// onto the Kind enum. Unrecognized values default to a full annual day,
// the least surprising reading of an approved request.
func NormalizeKind(raw string) Kind {
	switch raw {
	case "annual", "연차":
		return KindAnnual
	case "half_day_am", "오전반차":
		return KindHalfDayAM
	case "half_day_pm", "오후반차":
		return KindHalfDayPM
	case "unpaid_extended", "휴직":
		return KindUnpaidExtended
	default:
		return KindAnnual
	}
}

// NormalizeStatus maps raw stored values onto the Status enum.
func NormalizeStatus(raw string) Status {
	switch raw {
	case "approved", "승인":
		return StatusApproved
	case "rejected", "반려":
		return StatusRejected
	default:
		return StatusPending
	}
}
