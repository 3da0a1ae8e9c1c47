package bsmodel

import (
	"fmt"

	"github.com/vrtsystems/bacsched/bsdate"
	"github.com/vrtsystems/bacsched/bsval"
)

// TimeValue is a (time, value) pair; value may be Null to mean
// relinquish (spec.md §3).
type TimeValue struct {
	Time  bsdate.Time
	Value bsval.ScheduleValue
}

// NewTimeValue builds a TimeValue.
func NewTimeValue(t bsdate.Time, v bsval.ScheduleValue) TimeValue {
	return TimeValue{Time: t, Value: v}
}

// String renders the TimeValue for logs and demo output.
func (tv TimeValue) String() string {
	return fmt.Sprintf("%s->%s", tv.Time, tv.Value)
}

// DailySchedule is an ordered sequence of TimeValue for a single
// day-of-week slot. The evaluator tolerates unsorted input (spec.md
// §3, §4.4).
type DailySchedule struct {
	TimeValues []TimeValue
}

// WeeklySchedule is a fixed array of seven DailySchedules, indexed by
// day_of_week-1 (Monday=0) (spec.md §3).
type WeeklySchedule [7]DailySchedule

// Day returns the DailySchedule for a 1-based BACnet day-of-week
// (1=Monday ... 7=Sunday).
func (w WeeklySchedule) Day(dayOfWeek uint8) (DailySchedule, bool) {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return DailySchedule{}, false
	}
	return w[dayOfWeek-1], true
}
