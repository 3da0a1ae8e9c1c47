package bscal

import (
	"github.com/rickar/cal/v2"
	cal_us "github.com/rickar/cal/v2/us"

	"github.com/vrtsystems/bacsched/bsdate"
)

// WeekNDayFromHoliday converts a *cal.Holiday expressed as a
// month/week/weekday rule (e.g. "4th Thursday of November") into the
// equivalent bsdate.WeekNDay pattern, so a holiday calendar from the
// rickar/cal/v2 ecosystem can be dropped straight into a CalendarEntry.
// Holidays expressed as a fixed month/day (e.g. July 4th) convert to a
// concrete bsdate.DatePattern instead via DatePatternFromHoliday.
//
// Grounded on atime/rruleplus/calendar.go's ICalendar/cal.Holiday
// wiring; this module only needs the pattern shape, not cal.Holiday's
// observed-date shifting logic (that belongs to the host's writeback
// collaborator, out of scope per spec.md §1).
func WeekNDayFromHoliday(h *cal.Holiday) (bsdate.WeekNDay, bool) {
	if h == nil || h.Month == 0 || h.Offset == 0 {
		return bsdate.WeekNDay{}, false
	}
	week, ok := ordinalToWeekOfMonth(h.Offset)
	if !ok {
		return bsdate.WeekNDay{}, false
	}
	dow := int(h.Weekday)
	if dow == 0 {
		dow = 7
	}
	return bsdate.WeekNDay{
		Month:       uint8(h.Month),
		WeekOfMonth: week,
		DayOfWeek:   uint8(dow),
	}, true
}

// DatePatternFromHoliday converts a fixed-date *cal.Holiday (e.g. July
// 4th) into a concrete bsdate.DatePattern with a wildcard year.
func DatePatternFromHoliday(h *cal.Holiday) (bsdate.DatePattern, bool) {
	if h == nil || h.Month == 0 || h.Day == 0 {
		return bsdate.DatePattern{}, false
	}
	return bsdate.DatePattern{
		Year:      bsdate.Wildcard,
		Month:     uint8(h.Month),
		Day:       uint8(h.Day),
		DayOfWeek: bsdate.Wildcard,
	}, true
}

// ordinalToWeekOfMonth maps cal.Holiday's 1-based/-1-based Offset
// ("1st", "2nd", ..., "-1" for last) onto bsdate's WeekOfMonth octets.
// Only the common +1..+5 and "last" (-1) cases are represented; other
// negative offsets have no WeekNDay equivalent in spec.md §3's table.
func ordinalToWeekOfMonth(offset int) (uint8, bool) {
	switch {
	case offset == -1:
		return bsdate.WeekOfMonthLast7, true
	case offset >= 1 && offset <= 5:
		return uint8(offset), true
	default:
		return 0, false
	}
}

// USFederalHolidayEntries returns CalendarEntry values for the standard
// US federal holiday set from rickar/cal/v2/us, split into WeekNDay
// patterns (floating holidays like Thanksgiving) and DatePattern
// entries (fixed-date holidays like July 4th). Used by cmd/bsdemo and
// bscal's tests to exercise the pattern algebra against a real-world
// holiday set, per SPEC_FULL.md's domain-stack wiring.
func USFederalHolidayEntries() []CalendarEntry {
	entries := make([]CalendarEntry, 0, len(cal_us.Holidays))
	for _, h := range cal_us.Holidays {
		if w, ok := WeekNDayFromHoliday(h); ok {
			entries = append(entries, NewWeekNDayEntry(w))
			continue
		}
		if d, ok := DatePatternFromHoliday(h); ok {
			entries = append(entries, NewDateEntry(d))
		}
	}
	return entries
}
