package bssched

import (
	"github.com/vrtsystems/bacsched/bscal"
	"github.com/vrtsystems/bacsched/bsdate"
	"github.com/vrtsystems/bacsched/bserr"
	"github.com/vrtsystems/bacsched/bsmodel"
	"github.com/vrtsystems/bacsched/bsval"
)

// slot tracks, for one priority level, the value asserted by the
// chronologically-latest matching TimeValue seen so far and the time
// stamp that assertion carried. Tracking the maximum matching time
// (rather than applying entries in declaration order) is what makes
// Evaluate order-independent — spec.md §9 Q1 requires this exact
// divergence from the original sample's raw-iteration-order behavior.
type slot struct {
	present  bool // a matching TimeValue at or before `now` has been seen
	hasValue bool // the chronologically-latest such TimeValue asserted a non-Null value
	value    bsval.ScheduleValue
	at       bsdate.Time
}

// apply folds one TimeValue into the slot if its time is the latest
// (<=, ties broken by later declaration per spec.md §4.4's "edge
// cases") matching time seen so far at or before `now`.
func (s *slot) apply(tv bsmodel.TimeValue, now bsdate.Time) {
	if !tv.Time.LessEqual(now) {
		return
	}
	if s.present && s.at.Compare(tv.Time) > 0 {
		return // a later-effective TimeValue already won this slot
	}
	s.at = tv.Time
	s.present = true
	if tv.Value.IsNull() {
		s.clearValue()
		return
	}
	s.value = tv.Value
	s.hasValue = true
}

// clearValue marks the slot relinquished while keeping `at`/`present`
// so a subsequent equal-or-later TimeValue can still out-rank it.
func (s *slot) clearValue() {
	s.value = bsval.ScheduleValue{}
	s.hasValue = false
}

// Evaluate implements C4's eval(obj, date, time): the present value the
// Schedule Object shall expose at that instant (spec.md §4.4).
//
// Returns (value, true, nil) when in effect, (zero, false, nil) when
// outside the effective period or when obj's reliability is not
// NoFaultDetected, and a non-nil error for InvalidCalendarReference or
// MalformedConfiguration conditions raised while resolving calendar
// entries.
func Evaluate(obj *ScheduleObject, date bsdate.Date, now bsdate.Time) (bsval.ScheduleValue, bool, error) {
	if obj.Reliability != bsmodel.RELIABILITY_NO_FAULT_DETECTED {
		return bsval.ScheduleValue{}, false, nil
	}
	if !bsdate.MatchDateRange(date, obj.Config.EffectivePeriod) {
		return bsval.ScheduleValue{}, false, nil
	}

	value, err := evaluateLocked(obj, date, now)
	if err != nil {
		return bsval.ScheduleValue{}, false, err
	}

	obj.setPresentValue(value)
	return value, true, nil
}

func evaluateLocked(obj *ScheduleObject, date bsdate.Date, now bsdate.Time) (bsval.ScheduleValue, error) {
	slots, err := scanExceptions(obj.Config.ExceptionSchedule, obj.dir, date, now)
	if err != nil {
		return bsval.ScheduleValue{}, err
	}

	for priority := bsmodel.MinPriority; priority <= bsmodel.MaxPriority; priority++ {
		s := slots[priority]
		if s != nil && s.hasValue {
			return s.value, nil
		}
	}

	return weeklyFallback(obj.Config.ScheduleDefault, obj.Config.WeeklySchedule, date, now), nil
}

// scanExceptions implements spec.md §4.4 steps 2-3: allocate the
// 16-slot table and fold every matching SpecialEvent's TimeValues into
// it.
func scanExceptions(events []bsmodel.SpecialEvent, dir bscal.ObjectDirectory, date bsdate.Date, now bsdate.Time) (map[uint8]*slot, error) {
	slots := make(map[uint8]*slot, bsmodel.MaxPriority)

	for _, event := range events {
		matched, err := periodMatches(event.Period, dir, date)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		s := slots[event.Priority]
		if s == nil {
			s = &slot{}
			slots[event.Priority] = s
		}
		for _, tv := range event.ListOfTimeValues {
			s.apply(tv, now)
		}
	}

	return slots, nil
}

// periodMatches resolves a SpecialEventPeriod to a match boolean
// (spec.md §4.4 step 3a).
func periodMatches(period bsmodel.SpecialEventPeriod, dir bscal.ObjectDirectory, date bsdate.Date) (bool, error) {
	switch period.Kind {
	case bsmodel.PERIODKIND_CALENDAR_ENTRY:
		return bscal.DateInCalendarEntry(date, period.CalendarEntry)
	case bsmodel.PERIODKIND_CALENDAR_REFERENCE:
		calObj, ok := dir.LookupObject(period.CalendarReference)
		if !ok {
			return false, bserr.New(bserr.KindInvalidCalendarReference, "calendar reference "+period.CalendarReference.String()+" not found")
		}
		return bscal.DateInAnyCalendarEntry(date, calObj.DateList)
	default:
		return false, bserr.New(bserr.KindMalformedConfiguration, "special event period has no populated variant")
	}
}

// weeklyFallback implements spec.md §4.4 step 5: start from
// scheduleDefault and fold every matching TimeValue in the day's
// DailySchedule, tracking the chronologically-latest one exactly as
// scanExceptions does for priority slots.
func weeklyFallback(scheduleDefault bsval.ScheduleValue, weekly *bsmodel.WeeklySchedule, date bsdate.Date, now bsdate.Time) bsval.ScheduleValue {
	if weekly == nil {
		return scheduleDefault
	}
	daily, ok := weekly.Day(date.DayOfWeek)
	if !ok {
		return scheduleDefault
	}

	s := &slot{}
	for _, tv := range daily.TimeValues {
		s.apply(tv, now)
	}

	if s.hasValue {
		return s.value
	}
	return scheduleDefault
}
