package bscal

import (
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/vrtsystems/bacsched/bsval"
)

// ObjectIdentifier names an object (a Calendar Object, or a writeback
// target referenced by listOfObjectPropertyReferences) inside the
// host's registry. It wraps a uuid the way acron/jrun.go keys jobs by
// gofrs uuid, instead of BACnet's native (objectType, instance) pair,
// since the host's registry is the external collaborator here (spec.md
// §1) and the core only needs an opaque, comparable key.
type ObjectIdentifier uuid.UUID

// String renders the identifier.
func (id ObjectIdentifier) String() string {
	return uuid.UUID(id).String()
}

// CalendarObject is the external-boundary shape from spec.md §6: an
// identifier plus an immutable (for the duration of an evaluation)
// dateList of CalendarEntry.
type CalendarObject struct {
	ObjectIdentifier ObjectIdentifier
	DateList         []CalendarEntry
}

// PropertyReference names a property on some object type, as consumed
// by the Reliability Checker's I5 check (spec.md §3, §4.3). ArrayIndex
// of 0 is special: "length of Unsigned" per I5.
type PropertyReference struct {
	ObjectType string
	PropertyID string
	ArrayIndex *int
}

// ObjectDirectory is the external interface consumed by C2 and C3
// (spec.md §6): a read-only, purely functional lookup surface the core
// never mutates.
type ObjectDirectory interface {
	// LookupObject resolves a Calendar Object by identifier.
	LookupObject(id ObjectIdentifier) (*CalendarObject, bool)
	// DatatypeOf resolves the declared datatype of a property on an
	// object type. If arrayIndex is non-nil and equals 0, callers
	// should treat the result as DATATYPE_UNSIGNED regardless of what
	// DatatypeOf returns, per I5's "array index 0 means length".
	DatatypeOf(objectType, propertyID string) (bsval.Datatype, bool)
}

// InMemoryObjectDirectory is a simple, concurrency-safe ObjectDirectory
// backed by maps, modeled on atime/rruleplus/calendar.go's
// registry-by-key pattern (there keyed by ISO country code; here keyed
// by ObjectIdentifier and by (objectType, propertyID)). It is the
// directory implementation cmd/bsdemo and the test suite use; a real
// deployment would back ObjectDirectory with the device's live object
// database instead.
type InMemoryObjectDirectory struct {
	mu        sync.RWMutex
	calendars map[ObjectIdentifier]*CalendarObject
	datatypes map[string]bsval.Datatype
}

// NewInMemoryObjectDirectory builds an empty directory.
func NewInMemoryObjectDirectory() *InMemoryObjectDirectory {
	return &InMemoryObjectDirectory{
		calendars: make(map[ObjectIdentifier]*CalendarObject),
		datatypes: make(map[string]bsval.Datatype),
	}
}

// AddCalendarObject registers a Calendar Object under its identifier.
func (d *InMemoryObjectDirectory) AddCalendarObject(obj *CalendarObject) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calendars[obj.ObjectIdentifier] = obj
}

// SetDatatype registers the declared datatype of objectType's propertyID.
func (d *InMemoryObjectDirectory) SetDatatype(objectType, propertyID string, datatype bsval.Datatype) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.datatypes[datatypeKey(objectType, propertyID)] = datatype
}

// LookupObject implements ObjectDirectory.
func (d *InMemoryObjectDirectory) LookupObject(id ObjectIdentifier) (*CalendarObject, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	obj, ok := d.calendars[id]
	return obj, ok
}

// DatatypeOf implements ObjectDirectory.
func (d *InMemoryObjectDirectory) DatatypeOf(objectType, propertyID string) (bsval.Datatype, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	dt, ok := d.datatypes[datatypeKey(objectType, propertyID)]
	return dt, ok
}

func datatypeKey(objectType, propertyID string) string {
	return strings.ToLower(objectType) + "." + strings.ToLower(propertyID)
}
