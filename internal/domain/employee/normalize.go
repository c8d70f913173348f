package employee

// NormalizeWorkType maps raw stored values, including the legacy Korean
// ones, onto the WorkType enum. The legacy documents carried the value
// under several field names; whichever survives migration lands here.
func NormalizeWorkType(raw string) WorkType {
	switch raw {
	case "night", "야간":
		return WorkTypeNight
	case "rotating", "주야간", "교대":
		return WorkTypeRotating
	default:
		return WorkTypeDay
	}
}

// NormalizePayType maps raw stored values onto the PayType enum.
func NormalizePayType(raw string) PayType {
	switch raw {
	case "hourly", "시급":
		return PayTypeHourly
	default:
		return PayTypeSalaried
	}
}
