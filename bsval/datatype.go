package bsval

import "strings"

// Datatype identifies the runtime variant carried by a ScheduleValue.
// It mirrors the handful of atomic BACnet primitives a Schedule Object
// may be configured with; Null is deliberately excluded since it is a
// sentinel, not a datatype (spec.md §3, "Null is not a value").
type Datatype string

const (
	DATATYPE_NONE      Datatype = ""
	DATATYPE_BOOLEAN   Datatype = "boolean"
	DATATYPE_UNSIGNED  Datatype = "unsigned"
	DATATYPE_INTEGER   Datatype = "integer"
	DATATYPE_REAL      Datatype = "real"
	DATATYPE_DOUBLE    Datatype = "double"
	DATATYPE_ENUM      Datatype = "enumerated"
	DATATYPE_CHARSTR   Datatype = "characterstring"
)

// IsEmpty reports whether the Datatype has not been set.
func (dt Datatype) IsEmpty() bool {
	return strings.TrimSpace(string(dt)) == ""
}

// String returns the lowercase string form of the Datatype.
func (dt Datatype) String() string {
	return string(dt)
}

// IsValid reports whether dt is one of the seven atomic BACnet primitives.
func (dt Datatype) IsValid() bool {
	switch dt {
	case DATATYPE_BOOLEAN, DATATYPE_UNSIGNED, DATATYPE_INTEGER, DATATYPE_REAL,
		DATATYPE_DOUBLE, DATATYPE_ENUM, DATATYPE_CHARSTR:
		return true
	default:
		return false
	}
}
