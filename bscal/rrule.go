package bscal

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/vrtsystems/bacsched/bsdate"
)

// DateListFromRRule expands an RRULE between windowStart and windowEnd
// (both ends inclusive) into a []CalendarEntry of inline Date entries, letting an in-memory
// Object Directory synthesize a Calendar Object's dateList from a
// recurrence rule instead of requiring every occurrence to be
// enumerated by hand — e.g. "FREQ=MONTHLY;BYDAY=-1FR" for "last Friday
// of every month". Grounded on atime/rruleplus/rruleplus.go's use of
// rrule.NewRRule plus rrule.RRule's Between query.
//
// The returned entries are concrete DatePattern values (no wildcards),
// one per occurrence; C1's match_date treats them as ordinary exact
// dates.
func DateListFromRRule(option rrule.ROption, windowStart, windowEnd time.Time) ([]CalendarEntry, error) {
	rule, err := rrule.NewRRule(option)
	if err != nil {
		return nil, err
	}

	occurrences := rule.Between(windowStart, windowEnd, true)
	entries := make([]CalendarEntry, 0, len(occurrences))
	for _, occ := range occurrences {
		entries = append(entries, NewDateEntry(dateFromTime(occ)))
	}
	return entries, nil
}

func dateFromTime(t time.Time) bsdate.DatePattern {
	dow := int(t.Weekday())
	if dow == 0 {
		dow = 7 // time.Sunday == 0; BACnet day-of-week uses 7 for Sunday
	}
	return bsdate.DatePattern{
		Year:      uint8(t.Year() - 1900),
		Month:     uint8(t.Month()),
		Day:       uint8(t.Day()),
		DayOfWeek: uint8(dow),
	}
}
