package bsrel

import (
	"fmt"

	"github.com/vrtsystems/bacsched/bscal"
	"github.com/vrtsystems/bacsched/bsmodel"
	"github.com/vrtsystems/bacsched/bsval"
)

// Result is C3's outcome: the derived Reliability state plus, when it
// is RELIABILITY_CONFIGURATION_ERROR, the full set of invariant
// failures that produced it. Spec.md §7 says C3 "coalesces [failures]
// into ConfigurationError" and "does not surface a cause" to the
// caller's Reliability property — but the aggregate is still useful to
// a trace/log hook, so it is returned here and left to the caller
// whether to surface it (bssched logs the failure count at debug level
// via bslog on a reliability transition and exposes the aggregate
// through ScheduleObject.LastCheckFailures).
type Result struct {
	Reliability bsmodel.Reliability
	Failures    ValidationErrors
}

// CheckReliability implements C3: it runs invariants I1-I6 in order
// against cfg, consulting dir to resolve each listed property
// reference's declared datatype (I5). Unlike the source, which stops
// at the first failure, this aggregates every I1-I6 violation it finds
// into Result.Failures before returning — callers that only need the
// pass/fail bit can ignore Failures, while a diagnostic surface can log
// all of them. The returned Reliability alone matches spec.md §4.3's
// contract exactly.
func CheckReliability(cfg bsmodel.ScheduleConfig, dir bscal.ObjectDirectory) Result {
	var failures ValidationErrors

	datatype := checkI1(cfg, &failures)
	checkI2(cfg, &failures)
	checkI3(cfg, datatype, &failures)
	checkI4(cfg, &failures)
	checkI5(cfg, datatype, dir, &failures)
	checkI6(cfg, &failures)

	if len(failures) > 0 {
		return Result{Reliability: bsmodel.RELIABILITY_CONFIGURATION_ERROR, Failures: failures}
	}
	return Result{Reliability: bsmodel.RELIABILITY_NO_FAULT_DETECTED}
}

// checkI1 validates that scheduleDefault is non-Null and atomic, and
// returns the schedule datatype it implies (spec.md I1).
func checkI1(cfg bsmodel.ScheduleConfig, failures *ValidationErrors) bsval.Datatype {
	if cfg.ScheduleDefault.IsNull() {
		failures.Add(&ValidationError{Field: "scheduleDefault", Tag: "I1", Message: "scheduleDefault must not be Null"})
		return bsval.DATATYPE_NONE
	}
	dt := cfg.ScheduleDefault.Datatype()
	if !dt.IsValid() {
		failures.Add(&ValidationError{Field: "scheduleDefault", Tag: "I1", Message: "scheduleDefault has no recognized atomic datatype"})
	}
	return dt
}

// checkI2 validates that at least one of weeklySchedule or
// exceptionSchedule is present (spec.md I2).
func checkI2(cfg bsmodel.ScheduleConfig, failures *ValidationErrors) {
	if cfg.WeeklySchedule == nil && len(cfg.ExceptionSchedule) == 0 {
		failures.Add(&ValidationError{Field: "weeklySchedule/exceptionSchedule", Tag: "I2", Message: "at least one of weeklySchedule or exceptionSchedule must be present"})
	}
}

// checkI3 validates that every non-Null TimeValue in the weekly or
// exception schedules carries the schedule datatype (spec.md I3).
func checkI3(cfg bsmodel.ScheduleConfig, datatype bsval.Datatype, failures *ValidationErrors) {
	if cfg.WeeklySchedule != nil {
		for dayIndex, daily := range cfg.WeeklySchedule {
			for i, tv := range daily.TimeValues {
				if tv.Value.IsNull() {
					continue
				}
				if !tv.Value.SameTypeAs(datatype) {
					failures.Add(&ValidationError{
						Field:   fmt.Sprintf("weeklySchedule[%d][%d]", dayIndex, i),
						Tag:     "I3",
						Message: fmt.Sprintf("value %s does not match schedule datatype %q", tv.Value, datatype),
					})
				}
			}
		}
	}
	for eventIndex, event := range cfg.ExceptionSchedule {
		for i, tv := range event.ListOfTimeValues {
			if tv.Value.IsNull() {
				continue
			}
			if !tv.Value.SameTypeAs(datatype) {
				failures.Add(&ValidationError{
					Field:   fmt.Sprintf("exceptionSchedule[%d].listOfTimeValues[%d]", eventIndex, i),
					Tag:     "I3",
					Message: fmt.Sprintf("value %s does not match schedule datatype %q", tv.Value, datatype),
				})
			}
		}
	}
}

// checkI4 validates that no wildcard octets appear in any
// weekly-schedule Time (spec.md I4).
func checkI4(cfg bsmodel.ScheduleConfig, failures *ValidationErrors) {
	if cfg.WeeklySchedule == nil {
		return
	}
	for dayIndex, daily := range cfg.WeeklySchedule {
		for i, tv := range daily.TimeValues {
			if tv.Time.HasWildcard() {
				failures.Add(&ValidationError{
					Field:   fmt.Sprintf("weeklySchedule[%d][%d].time", dayIndex, i),
					Tag:     "I4",
					Message: "weekly schedule Time must not contain wildcard octets",
				})
			}
		}
	}
}

// checkI5 validates that every listed property reference's declared
// type (or element type for an array index, or Unsigned for array
// index 0) equals the schedule datatype (spec.md I5).
func checkI5(cfg bsmodel.ScheduleConfig, datatype bsval.Datatype, dir bscal.ObjectDirectory, failures *ValidationErrors) {
	for i, ref := range cfg.ListOfObjectPropertyReferences {
		if ref.ArrayIndex != nil && *ref.ArrayIndex == 0 {
			if datatype != bsval.DATATYPE_UNSIGNED {
				failures.Add(&ValidationError{
					Field:   fmt.Sprintf("listOfObjectPropertyReferences[%d]", i),
					Tag:     "I5",
					Message: "array index 0 denotes array length (Unsigned); schedule datatype is not Unsigned",
				})
			}
			continue
		}
		refType, ok := dir.DatatypeOf(ref.ObjectType, ref.PropertyID)
		if !ok {
			failures.Add(&ValidationError{
				Field:   fmt.Sprintf("listOfObjectPropertyReferences[%d]", i),
				Tag:     "I5",
				Message: fmt.Sprintf("property %s.%s not resolvable in object directory", ref.ObjectType, ref.PropertyID),
			})
			continue
		}
		if refType != datatype {
			failures.Add(&ValidationError{
				Field:   fmt.Sprintf("listOfObjectPropertyReferences[%d]", i),
				Tag:     "I5",
				Message: fmt.Sprintf("property %s.%s has datatype %q, schedule datatype is %q", ref.ObjectType, ref.PropertyID, refType, datatype),
			})
		}
	}
}

// checkI6 validates that every exception priority lies in 1..16
// (spec.md I6).
func checkI6(cfg bsmodel.ScheduleConfig, failures *ValidationErrors) {
	for i, event := range cfg.ExceptionSchedule {
		if !event.IsPriorityValid() {
			failures.Add(&ValidationError{
				Field:   fmt.Sprintf("exceptionSchedule[%d].priority", i),
				Tag:     "I6",
				Message: fmt.Sprintf("priority %d outside 1..16", event.Priority),
			})
		}
	}
}
