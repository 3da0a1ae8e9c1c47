package bsdate

// DatePattern is the pattern-matching counterpart of Date: any field
// may carry Wildcard, and month/day additionally support the special
// BACnet parity and last-day octets (spec.md §3):
//
//	month: 13 = odd months, 14 = even months
//	day:   32 = last day of the month, 33 = odd days, 34 = even days
type DatePattern struct {
	Year      uint8 // Wildcard, or an exact YearOffset
	Month     uint8 // Wildcard, 13, 14, or 1..12
	Day       uint8 // Wildcard, 32, 33, 34, or 1..31
	DayOfWeek uint8 // Wildcard, or 1..7
}

const (
	MonthOdd  uint8 = 13
	MonthEven uint8 = 14

	DayLast uint8 = 32
	DayOdd  uint8 = 33
	DayEven uint8 = 34
)

// MatchDate implements C1's match_date: it tests date field-by-field
// against pattern, applying the wildcard/parity/last-day rules in
// spec.md §4.1. Out-of-domain pattern octets (e.g. month == 15) are
// treated as a non-match, never an error (spec.md §4.1 "Error
// conditions").
func MatchDate(date Date, pattern DatePattern) bool {
	if !matchYear(date.YearOffset, pattern.Year) {
		return false
	}
	if !matchMonth(date.Month, pattern.Month) {
		return false
	}
	if !matchDay(date, pattern.Day) {
		return false
	}
	if !matchDayOfWeek(date.DayOfWeek, pattern.DayOfWeek) {
		return false
	}
	return true
}

func matchYear(year, patternYear uint8) bool {
	if patternYear == Wildcard {
		return true
	}
	return year == patternYear
}

func matchMonth(month, patternMonth uint8) bool {
	switch patternMonth {
	case Wildcard:
		return true
	case MonthOdd:
		return month >= 1 && month <= 12 && month%2 == 1
	case MonthEven:
		return month >= 1 && month <= 12 && month%2 == 0
	default:
		if patternMonth < 1 || patternMonth > 12 {
			return false // out-of-domain octet: conservative non-match
		}
		return month == patternMonth
	}
}

func matchDay(date Date, patternDay uint8) bool {
	switch patternDay {
	case Wildcard:
		return true
	case DayLast:
		return int(date.Day) == LastDayOfMonth(date.ActualYear(), date.Month)
	case DayOdd:
		return date.Day >= 1 && date.Day <= 31 && date.Day%2 == 1
	case DayEven:
		return date.Day >= 1 && date.Day <= 31 && date.Day%2 == 0
	default:
		if patternDay < 1 || patternDay > 31 {
			return false
		}
		return date.Day == patternDay
	}
}

func matchDayOfWeek(dow, patternDow uint8) bool {
	if patternDow == Wildcard {
		return true
	}
	if patternDow < 1 || patternDow > 7 {
		return false
	}
	return dow == patternDow
}
