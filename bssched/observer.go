package bssched

import (
	"github.com/vrtsystems/bacsched/bsmodel"
	"github.com/vrtsystems/bacsched/bsval"
)

// ChangeEvent is delivered to observers after a monitored property is
// written, carrying the property that changed, its prior value, and
// its new value (spec.md §6 "Change-notification hook"). PresentValue
// and ScheduleDefault changes carry ScheduleValue payloads; weekly and
// exception schedule changes carry zero ScheduleValues and exist so observers
// can react to "the schedule was reconfigured" without inspecting the
// object's full Reliability state themselves.
type ChangeEvent struct {
	Property bsmodel.MonitoredProperty
	OldValue bsval.ScheduleValue
	NewValue bsval.ScheduleValue
}

// Observer receives a ChangeEvent. Observer invocations happen on the
// caller's thread, after the write that triggered them is visible
// (spec.md §6).
type Observer func(event ChangeEvent)

// observerList is a minimal vector of Observer callbacks, replacing the
// source's dynamic property-monitor mapping with the explicit
// MonitoredProperty enumeration from spec.md §9.
type observerList struct {
	observers []Observer
}

func (ol *observerList) register(o Observer) {
	if o == nil {
		return
	}
	ol.observers = append(ol.observers, o)
}

func (ol *observerList) notify(event ChangeEvent) {
	for _, o := range ol.observers {
		o(event)
	}
}
