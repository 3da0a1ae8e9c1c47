package bsmodel

import (
	"github.com/vrtsystems/bacsched/bscal"
	"github.com/vrtsystems/bacsched/bsdate"
	"github.com/vrtsystems/bacsched/bsval"
)

// MonitoredProperty enumerates the Schedule Object properties whose
// mutation fires a change-notification hook and (for the first three)
// re-runs the Reliability Checker. Replaces the source's dynamic
// property-monitor mapping with an explicit enumeration (spec.md §9).
type MonitoredProperty string

const (
	MONITOREDPROPERTY_WEEKLY_SCHEDULE    MonitoredProperty = "weeklySchedule"
	MONITOREDPROPERTY_EXCEPTION_SCHEDULE MonitoredProperty = "exceptionSchedule"
	MONITOREDPROPERTY_SCHEDULE_DEFAULT   MonitoredProperty = "scheduleDefault"
	MONITOREDPROPERTY_PRESENT_VALUE      MonitoredProperty = "presentValue"
)

// Reliability is the Schedule Object's derived fault state (spec.md §3).
type Reliability string

const (
	RELIABILITY_NO_FAULT_DETECTED    Reliability = "noFaultDetected"
	RELIABILITY_CONFIGURATION_ERROR Reliability = "configurationError"
)

// ScheduleConfig is the Schedule Object's persistent configuration
// (spec.md §3), factored out of ScheduleObject so the Reliability
// Checker (bsrel) can validate it without importing the Evaluator.
type ScheduleConfig struct {
	EffectivePeriod                bsdate.DateRange
	WeeklySchedule                 *WeeklySchedule
	ExceptionSchedule              []SpecialEvent
	ScheduleDefault                bsval.ScheduleValue
	ListOfObjectPropertyReferences []bscal.PropertyReference
}
