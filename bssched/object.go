package bssched

import (
	"github.com/vrtsystems/bacsched/bscal"
	"github.com/vrtsystems/bacsched/bslog"
	"github.com/vrtsystems/bacsched/bsmodel"
	"github.com/vrtsystems/bacsched/bsrel"
	"github.com/vrtsystems/bacsched/bsval"
)

// ScheduleObject is the Schedule Object described in spec.md §3: a
// persistent configuration, a derived reliability state, and the last
// computed Present Value. It is constructed once and may be evaluated
// any number of times (spec.md "Lifecycle").
type ScheduleObject struct {
	Config       bsmodel.ScheduleConfig
	Reliability  bsmodel.Reliability
	PresentValue bsval.ScheduleValue

	dir       bscal.ObjectDirectory
	observers observerList
	lastCheck bsrel.Result
}

// NewScheduleObject constructs a Schedule Object from its initial
// configuration and runs the Reliability Checker immediately, per
// spec.md "Lifecycle". The returned object's PresentValue starts out
// Null until the first successful Evaluate call or external write.
func NewScheduleObject(cfg bsmodel.ScheduleConfig, dir bscal.ObjectDirectory) *ScheduleObject {
	obj := &ScheduleObject{
		Config:       cfg,
		PresentValue: bsval.Null(),
		dir:          dir,
	}
	obj.runReliabilityCheck()
	return obj
}

// RegisterObserver adds an Observer notified after any monitored
// property is written (spec.md §6).
func (obj *ScheduleObject) RegisterObserver(o Observer) {
	obj.observers.register(o)
}

// LastCheckFailures returns the ValidationErrors from the most recent
// Reliability Checker pass. Empty when Reliability is NoFaultDetected.
// Spec.md §7 keeps the cause out of the Reliability property itself;
// this is the "trace hook" surface that keeps it available.
func (obj *ScheduleObject) LastCheckFailures() bsrel.ValidationErrors {
	return obj.lastCheck.Failures
}

func (obj *ScheduleObject) runReliabilityCheck() {
	previous := obj.Reliability
	obj.lastCheck = bsrel.CheckReliability(obj.Config, obj.dir)
	obj.Reliability = obj.lastCheck.Reliability
	if obj.Reliability != previous {
		bslog.L().Debug().
			Str("from", string(previous)).
			Str("to", string(obj.Reliability)).
			Int("failures", len(obj.lastCheck.Failures)).
			Msg("schedule reliability transition")
	}
}

// SetScheduleDefault replaces scheduleDefault, re-runs the Reliability
// Checker, and notifies observers (spec.md "Lifecycle").
func (obj *ScheduleObject) SetScheduleDefault(v bsval.ScheduleValue) {
	old := obj.Config.ScheduleDefault
	obj.Config.ScheduleDefault = v
	obj.runReliabilityCheck()
	obj.observers.notify(ChangeEvent{Property: bsmodel.MONITOREDPROPERTY_SCHEDULE_DEFAULT, OldValue: old, NewValue: v})
}

// SetWeeklySchedule replaces the weekly schedule, re-runs the
// Reliability Checker, and notifies observers.
func (obj *ScheduleObject) SetWeeklySchedule(w *bsmodel.WeeklySchedule) {
	obj.Config.WeeklySchedule = w
	obj.runReliabilityCheck()
	obj.observers.notify(ChangeEvent{Property: bsmodel.MONITOREDPROPERTY_WEEKLY_SCHEDULE})
}

// SetExceptionSchedule replaces the exception schedule, re-runs the
// Reliability Checker, and notifies observers.
func (obj *ScheduleObject) SetExceptionSchedule(events []bsmodel.SpecialEvent) {
	obj.Config.ExceptionSchedule = events
	obj.runReliabilityCheck()
	obj.observers.notify(ChangeEvent{Property: bsmodel.MONITOREDPROPERTY_EXCEPTION_SCHEDULE})
}

// setPresentValue is used both by Evaluate and by an external client
// write (spec.md §3 "Present Value is updated by the Evaluator or by
// an external client... both paths fire the same change-notification
// hook").
func (obj *ScheduleObject) setPresentValue(v bsval.ScheduleValue) {
	old := obj.PresentValue
	obj.PresentValue = v
	obj.observers.notify(ChangeEvent{Property: bsmodel.MONITOREDPROPERTY_PRESENT_VALUE, OldValue: old, NewValue: v})
}

// WritePresentValue lets an external client write Present Value
// directly, firing the same observer hook Evaluate uses.
func (obj *ScheduleObject) WritePresentValue(v bsval.ScheduleValue) {
	obj.setPresentValue(v)
}
