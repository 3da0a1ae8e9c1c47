package bssched

import (
	"time"

	"github.com/vrtsystems/bacsched/bsdate"
)

// Clock is the external collaborator from spec.md §6: it supplies the
// current (date, time) at the outermost trigger site. The core never
// calls it internally — Evaluate always takes an explicit (date, time)
// so a caller can take the instant from any Clock, real or fake.
type Clock interface {
	Now() (bsdate.Date, bsdate.Time)
}

// FixedClock is a Clock that always returns the same (date, time), for
// callers that need a fixed instant instead of the wall clock.
type FixedClock struct {
	Date bsdate.Date
	Time bsdate.Time
}

// Now implements Clock.
func (c FixedClock) Now() (bsdate.Date, bsdate.Time) {
	return c.Date, c.Time
}

// SystemClock is a Clock backed by the host's wall-clock time in UTC,
// used by cmd/bsdemo's periodic trigger.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() (bsdate.Date, bsdate.Time) {
	now := time.Now().UTC()
	dow := int(now.Weekday())
	if dow == 0 {
		dow = 7
	}
	date := bsdate.NewDate(now.Year(), uint8(now.Month()), uint8(now.Day()), uint8(dow))
	t := bsdate.NewTime(uint8(now.Hour()), uint8(now.Minute()), uint8(now.Second()), uint8(now.Nanosecond()/10000000))
	return date, t
}
