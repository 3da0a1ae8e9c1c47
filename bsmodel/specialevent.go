package bsmodel

import (
	"github.com/vrtsystems/bacsched/bscal"
)

// PeriodKind tags which variant of a SpecialEventPeriod is populated.
type PeriodKind string

const (
	PERIODKIND_NONE               PeriodKind = ""
	PERIODKIND_CALENDAR_ENTRY     PeriodKind = "calendarEntry"
	PERIODKIND_CALENDAR_REFERENCE PeriodKind = "calendarReference"
)

// SpecialEventPeriod is either an inline CalendarEntry or a reference
// to an external Calendar Object resolved through the Object Directory
// (spec.md §3).
type SpecialEventPeriod struct {
	Kind              PeriodKind
	CalendarEntry     bscal.CalendarEntry
	CalendarReference bscal.ObjectIdentifier
}

// NewInlinePeriod builds a SpecialEventPeriod carrying an inline entry.
func NewInlinePeriod(entry bscal.CalendarEntry) SpecialEventPeriod {
	return SpecialEventPeriod{Kind: PERIODKIND_CALENDAR_ENTRY, CalendarEntry: entry}
}

// NewReferencePeriod builds a SpecialEventPeriod referencing a Calendar Object.
func NewReferencePeriod(ref bscal.ObjectIdentifier) SpecialEventPeriod {
	return SpecialEventPeriod{Kind: PERIODKIND_CALENDAR_REFERENCE, CalendarReference: ref}
}

// SpecialEvent is a priority-tagged exception override active on dates
// matched by its period (spec.md §3).
type SpecialEvent struct {
	Period           SpecialEventPeriod
	ListOfTimeValues []TimeValue
	Priority         uint8 // must be in 1..16 (I6)
}

// MinPriority and MaxPriority bound the valid SpecialEvent.Priority
// range (spec.md §3 I6, §4.4's 16-slot table).
const (
	MinPriority uint8 = 1
	MaxPriority uint8 = 16
)

// IsPriorityValid reports whether e.Priority lies in [MinPriority, MaxPriority].
func (e SpecialEvent) IsPriorityValid() bool {
	return e.Priority >= MinPriority && e.Priority <= MaxPriority
}
