package bsdate

import "fmt"

// Date is the four-field BACnet date tuple: a year offset from 1900, a
// 1-based month, a 1-based day, and a 1-based ISO day-of-week
// (1=Monday ... 7=Sunday). A Date used as an evaluation input must be
// concrete — see IsConcrete (spec.md §3).
type Date struct {
	YearOffset uint8 // actualYear = 1900 + YearOffset
	Month      uint8
	Day        uint8
	DayOfWeek  uint8
}

// NewDate builds a Date from an actual calendar year (e.g. 2026), a
// 1-based month, a 1-based day, and a 1-based day-of-week.
func NewDate(actualYear int, month, day, dayOfWeek uint8) Date {
	return Date{YearOffset: uint8(actualYear - 1900), Month: month, Day: day, DayOfWeek: dayOfWeek}
}

// ActualYear returns the real calendar year represented by this date.
func (d Date) ActualYear() int {
	return int(d.YearOffset) + 1900
}

// IsConcrete reports whether none of the date's fields carry Wildcard.
// All evaluation inputs must be concrete (spec.md §3).
func (d Date) IsConcrete() bool {
	return d.YearOffset != Wildcard && d.Month != Wildcard && d.Day != Wildcard && d.DayOfWeek != Wildcard
}

// Compare orders two concrete dates lexicographically on
// (year, month, day); the day-of-week field is never part of ordering
// (used by match_date_range, spec.md §4.1).
func (d Date) Compare(other Date) int {
	if d.YearOffset != other.YearOffset {
		return cmpU8(d.YearOffset, other.YearOffset)
	}
	if d.Month != other.Month {
		return cmpU8(d.Month, other.Month)
	}
	return cmpU8(d.Day, other.Day)
}

// String renders the date as YYYY-MM-DD(dow) for logs and demo output.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d(dow=%d)", d.ActualYear(), d.Month, d.Day, d.DayOfWeek)
}

// IsLeapYear reports whether the Gregorian year is a leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// daysInMonthTable maps a 1-based month to the number of days in that
// month in a non-leap Gregorian year; DaysInMonth applies the leap-year
// February correction (spec.md §4.1, "Last-day-of-month computation").
var daysInMonthTable = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in (year, month). month must
// be in [1,12]; any other value returns 0.
func DaysInMonth(year int, month uint8) int {
	if month < 1 || month > 12 {
		return 0
	}
	n := daysInMonthTable[month]
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return n
}

// LastDayOfMonth returns the day-of-month value (28-31) that is the
// last day of (year, month). Returns 0 for an out-of-domain month.
func LastDayOfMonth(year int, month uint8) int {
	return DaysInMonth(year, month)
}
