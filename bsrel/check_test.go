package bsrel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vrtsystems/bacsched/bscal"
	"github.com/vrtsystems/bacsched/bsdate"
	"github.com/vrtsystems/bacsched/bsmodel"
	"github.com/vrtsystems/bacsched/bsrel"
	"github.com/vrtsystems/bacsched/bsval"
)

func weeklyAllDays(tvs ...bsmodel.TimeValue) *bsmodel.WeeklySchedule {
	var w bsmodel.WeeklySchedule
	for i := range w {
		w[i] = bsmodel.DailySchedule{TimeValues: tvs}
	}
	return &w
}

func TestCheckReliability_ValidWeeklyOnly(t *testing.T) {
	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		WeeklySchedule: weeklyAllDays(
			bsmodel.NewTimeValue(bsdate.NewTime(8, 0, 0, 0), bsval.NewInteger(8)),
			bsmodel.NewTimeValue(bsdate.NewTime(17, 0, 0, 0), bsval.Null()),
		),
		ScheduleDefault: bsval.NewInteger(0),
	}
	result := bsrel.CheckReliability(cfg, bscal.NewInMemoryObjectDirectory())
	assert.Equal(t, bsmodel.RELIABILITY_NO_FAULT_DETECTED, result.Reliability)
	assert.Empty(t, result.Failures)
}

// P1: CheckReliability is idempotent.
func TestCheckReliability_Idempotent(t *testing.T) {
	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		WeeklySchedule:  weeklyAllDays(bsmodel.NewTimeValue(bsdate.NewTime(8, 0, 0, 0), bsval.NewInteger(8))),
		ScheduleDefault: bsval.NewInteger(0),
	}
	dir := bscal.NewInMemoryObjectDirectory()
	first := bsrel.CheckReliability(cfg, dir)
	second := bsrel.CheckReliability(cfg, dir)
	assert.Equal(t, first.Reliability, second.Reliability)
}

// I1: scheduleDefault must be non-Null.
func TestCheckReliability_I1_NullDefault(t *testing.T) {
	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		WeeklySchedule:  weeklyAllDays(bsmodel.NewTimeValue(bsdate.NewTime(8, 0, 0, 0), bsval.NewInteger(8))),
		ScheduleDefault: bsval.Null(),
	}
	result := bsrel.CheckReliability(cfg, bscal.NewInMemoryObjectDirectory())
	assert.Equal(t, bsmodel.RELIABILITY_CONFIGURATION_ERROR, result.Reliability)
}

// I2: at least one of weeklySchedule/exceptionSchedule must be present.
func TestCheckReliability_I2_NeitherScheduleProvided(t *testing.T) {
	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		ScheduleDefault: bsval.NewInteger(0),
	}
	result := bsrel.CheckReliability(cfg, bscal.NewInMemoryObjectDirectory())
	assert.Equal(t, bsmodel.RELIABILITY_CONFIGURATION_ERROR, result.Reliability)
}

// I3 / S4: type mismatch between scheduleDefault and a weekly entry.
func TestCheckReliability_I3_TypeMismatch(t *testing.T) {
	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		WeeklySchedule:  weeklyAllDays(bsmodel.NewTimeValue(bsdate.NewTime(8, 0, 0, 0), bsval.NewInteger(8))),
		ScheduleDefault: bsval.NewReal(72.0),
	}
	result := bsrel.CheckReliability(cfg, bscal.NewInMemoryObjectDirectory())
	assert.Equal(t, bsmodel.RELIABILITY_CONFIGURATION_ERROR, result.Reliability)
	assert.NotEmpty(t, result.Failures)
}

// I4: wildcard octets forbidden in weekly-schedule Time.
func TestCheckReliability_I4_WildcardInWeeklyTime(t *testing.T) {
	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		WeeklySchedule:  weeklyAllDays(bsmodel.NewTimeValue(bsdate.Time{Hour: bsdate.Wildcard}, bsval.NewInteger(8))),
		ScheduleDefault: bsval.NewInteger(0),
	}
	result := bsrel.CheckReliability(cfg, bscal.NewInMemoryObjectDirectory())
	assert.Equal(t, bsmodel.RELIABILITY_CONFIGURATION_ERROR, result.Reliability)
}

// I5: property reference datatype must match the schedule datatype.
func TestCheckReliability_I5_PropertyReferenceMismatch(t *testing.T) {
	dir := bscal.NewInMemoryObjectDirectory()
	dir.SetDatatype("analogValue", "presentValue", bsval.DATATYPE_REAL)

	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		WeeklySchedule:  weeklyAllDays(bsmodel.NewTimeValue(bsdate.NewTime(8, 0, 0, 0), bsval.NewInteger(8))),
		ScheduleDefault: bsval.NewInteger(0),
		ListOfObjectPropertyReferences: []bscal.PropertyReference{
			{ObjectType: "analogValue", PropertyID: "presentValue"},
		},
	}
	result := bsrel.CheckReliability(cfg, dir)
	assert.Equal(t, bsmodel.RELIABILITY_CONFIGURATION_ERROR, result.Reliability)
}

func TestCheckReliability_I5_PropertyReferenceMatches(t *testing.T) {
	dir := bscal.NewInMemoryObjectDirectory()
	dir.SetDatatype("analogValue", "presentValue", bsval.DATATYPE_INTEGER)

	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		WeeklySchedule:  weeklyAllDays(bsmodel.NewTimeValue(bsdate.NewTime(8, 0, 0, 0), bsval.NewInteger(8))),
		ScheduleDefault: bsval.NewInteger(0),
		ListOfObjectPropertyReferences: []bscal.PropertyReference{
			{ObjectType: "analogValue", PropertyID: "presentValue"},
		},
	}
	result := bsrel.CheckReliability(cfg, dir)
	assert.Equal(t, bsmodel.RELIABILITY_NO_FAULT_DETECTED, result.Reliability)
}

// I5: array index 0 means "length of Unsigned".
func TestCheckReliability_I5_ArrayIndexZeroMeansLength(t *testing.T) {
	dir := bscal.NewInMemoryObjectDirectory()
	zero := 0
	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		WeeklySchedule:  weeklyAllDays(bsmodel.NewTimeValue(bsdate.NewTime(8, 0, 0, 0), bsval.NewUnsigned(8))),
		ScheduleDefault: bsval.NewUnsigned(0),
		ListOfObjectPropertyReferences: []bscal.PropertyReference{
			{ObjectType: "analogValue", PropertyID: "priorityArray", ArrayIndex: &zero},
		},
	}
	result := bsrel.CheckReliability(cfg, dir)
	assert.Equal(t, bsmodel.RELIABILITY_NO_FAULT_DETECTED, result.Reliability)
}

// I6: exception priorities must lie in 1..16.
func TestCheckReliability_I6_PriorityOutOfRange(t *testing.T) {
	cfg := bsmodel.ScheduleConfig{
		EffectivePeriod: bsdate.CoversAllDates(),
		ExceptionSchedule: []bsmodel.SpecialEvent{
			{
				Period:           bsmodel.NewInlinePeriod(bscal.NewDateEntry(bsdate.DatePattern{Year: bsdate.Wildcard, Month: bsdate.Wildcard, Day: bsdate.Wildcard, DayOfWeek: bsdate.Wildcard})),
				ListOfTimeValues: []bsmodel.TimeValue{bsmodel.NewTimeValue(bsdate.NewTime(9, 0, 0, 0), bsval.NewInteger(1))},
				Priority:         17,
			},
		},
		ScheduleDefault: bsval.NewInteger(0),
	}
	result := bsrel.CheckReliability(cfg, bscal.NewInMemoryObjectDirectory())
	assert.Equal(t, bsmodel.RELIABILITY_CONFIGURATION_ERROR, result.Reliability)
}
