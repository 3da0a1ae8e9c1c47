package bsdate

import "fmt"

// Wildcard is the BACnet "any" octet value (255) permitted in
// configuration-facing Time and Date fields (spec.md §3).
const Wildcard uint8 = 255

// Time is the four-field BACnet time tuple (hour, minute, second,
// hundredth). A weekly schedule's TimeValue.Time must be concrete
// (I4); exception-schedule TimeValues are concrete in practice too —
// only configuration-side fields ever carry Wildcard (spec.md §9 Q2).
type Time struct {
	Hour      uint8
	Minute    uint8
	Second    uint8
	Hundredth uint8
}

// NewTime builds a concrete Time from its four fields.
func NewTime(hour, minute, second, hundredth uint8) Time {
	return Time{Hour: hour, Minute: minute, Second: second, Hundredth: hundredth}
}

// Midnight is the (0,0,0,0) boundary time (spec.md B1).
func Midnight() Time {
	return Time{}
}

// EndOfDay is the last representable moment of a concrete day.
func EndOfDay() Time {
	return Time{Hour: 23, Minute: 59, Second: 59, Hundredth: 99}
}

// HasWildcard reports whether any field carries the Wildcard octet.
func (t Time) HasWildcard() bool {
	return t.Hour == Wildcard || t.Minute == Wildcard || t.Second == Wildcard || t.Hundredth == Wildcard
}

// Compare returns -1, 0, or 1 as t is lexicographically less than,
// equal to, or greater than other, comparing hour, then minute, then
// second, then hundredth in turn (spec.md §4.4).
func (t Time) Compare(other Time) int {
	if t.Hour != other.Hour {
		return cmpU8(t.Hour, other.Hour)
	}
	if t.Minute != other.Minute {
		return cmpU8(t.Minute, other.Minute)
	}
	if t.Second != other.Second {
		return cmpU8(t.Second, other.Second)
	}
	return cmpU8(t.Hundredth, other.Hundredth)
}

// LessEqual reports whether t <= other lexicographically.
func (t Time) LessEqual(other Time) bool {
	return t.Compare(other) <= 0
}

func cmpU8(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the time as HH:MM:SS.hh for logs and demo output.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%02d", t.Hour, t.Minute, t.Second, t.Hundredth)
}
