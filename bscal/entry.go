package bscal

import (
	"github.com/vrtsystems/bacsched/bserr"
	"github.com/vrtsystems/bacsched/bsdate"
)

// EntryKind tags which variant of a CalendarEntry is populated.
type EntryKind string

const (
	ENTRYKIND_NONE      EntryKind = ""
	ENTRYKIND_DATE      EntryKind = "date"
	ENTRYKIND_DATERANGE EntryKind = "dateRange"
	ENTRYKIND_WEEKNDAY  EntryKind = "weekNDay"
)

// CalendarEntry is the tagged union described in spec.md §3: exactly
// one of Date, DateRange, or WeekNDay is populated, selected by Kind.
type CalendarEntry struct {
	Kind      EntryKind
	Date      bsdate.DatePattern
	DateRange bsdate.DateRange
	WeekNDay  bsdate.WeekNDay
}

// NewDateEntry builds a CalendarEntry carrying an inline DatePattern.
func NewDateEntry(p bsdate.DatePattern) CalendarEntry {
	return CalendarEntry{Kind: ENTRYKIND_DATE, Date: p}
}

// NewDateRangeEntry builds a CalendarEntry carrying a DateRange.
func NewDateRangeEntry(r bsdate.DateRange) CalendarEntry {
	return CalendarEntry{Kind: ENTRYKIND_DATERANGE, DateRange: r}
}

// NewWeekNDayEntry builds a CalendarEntry carrying a WeekNDay pattern.
func NewWeekNDayEntry(w bsdate.WeekNDay) CalendarEntry {
	return CalendarEntry{Kind: ENTRYKIND_WEEKNDAY, WeekNDay: w}
}

// DateInCalendarEntry implements C2: dispatch entry's populated variant
// to the matching C1 matcher. A CalendarEntry with no populated variant
// fails with MalformedConfiguration (spec.md §4.2).
func DateInCalendarEntry(date bsdate.Date, entry CalendarEntry) (bool, error) {
	switch entry.Kind {
	case ENTRYKIND_DATE:
		return bsdate.MatchDate(date, entry.Date), nil
	case ENTRYKIND_DATERANGE:
		return bsdate.MatchDateRange(date, entry.DateRange), nil
	case ENTRYKIND_WEEKNDAY:
		return bsdate.MatchWeekNDay(date, entry.WeekNDay), nil
	default:
		return false, bserr.New(bserr.KindMalformedConfiguration, "calendar entry has no populated variant")
	}
}

// DateInAnyCalendarEntry reports whether date matches at least one
// entry in the list, stopping at the first error encountered.
func DateInAnyCalendarEntry(date bsdate.Date, entries []CalendarEntry) (bool, error) {
	for _, entry := range entries {
		matched, err := DateInCalendarEntry(date, entry)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
