package bsdate

// WeekNDay is the "week-and-day" calendar pattern: three octets
// (month, week-of-month, day-of-week), each independently wildcardable,
// used to express things like "the last Friday of every month"
// (spec.md §3).
type WeekNDay struct {
	Month       uint8 // Wildcard, 13 (odd), 14 (even), or 1..12
	WeekOfMonth uint8 // Wildcard, or 1..9 per the table in spec.md §3
	DayOfWeek   uint8 // Wildcard, or 1..7
}

const (
	WeekOfMonth1st uint8 = 1
	WeekOfMonth2nd uint8 = 2
	WeekOfMonth3rd uint8 = 3
	WeekOfMonth4th uint8 = 4
	WeekOfMonth5th uint8 = 5

	WeekOfMonthLast7         uint8 = 6
	WeekOfMonthPriorToLast7  uint8 = 7
	WeekOfMonthPriorToLast14 uint8 = 8
	WeekOfMonthPriorToLast21 uint8 = 9
)

// MatchWeekNDay implements C1's match_weeknday. The month field shares
// match_date's {Wildcard,13,14,1..12} semantics; week-of-month selects
// one of the nine day-ranges from spec.md §3's table; day-of-week
// accepts Wildcard or an exact 1..7 (spec.md §4.1).
func MatchWeekNDay(date Date, w WeekNDay) bool {
	if !matchMonth(date.Month, w.Month) {
		return false
	}
	if !matchDayOfWeek(date.DayOfWeek, w.DayOfWeek) {
		return false
	}
	return matchWeekOfMonth(date, w.WeekOfMonth)
}

func matchWeekOfMonth(date Date, week uint8) bool {
	if week == Wildcard {
		return true
	}
	day := int(date.Day)
	lastDay := LastDayOfMonth(date.ActualYear(), date.Month)
	if lastDay == 0 {
		return false
	}
	switch week {
	case WeekOfMonth1st:
		return day >= 1 && day <= 7
	case WeekOfMonth2nd:
		return day >= 8 && day <= 14
	case WeekOfMonth3rd:
		return day >= 15 && day <= 21
	case WeekOfMonth4th:
		return day >= 22 && day <= 28
	case WeekOfMonth5th:
		return day >= 29 && day <= lastDay
	case WeekOfMonthLast7:
		return day > lastDay-7
	case WeekOfMonthPriorToLast7:
		return day > lastDay-14 && day <= lastDay-7
	case WeekOfMonthPriorToLast14:
		return day > lastDay-21 && day <= lastDay-14
	case WeekOfMonthPriorToLast21:
		return day > lastDay-28 && day <= lastDay-21
	default:
		return false // out-of-domain octet: conservative non-match
	}
}
