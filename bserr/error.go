package bserr

import (
	"encoding/json"
	"errors"
)

// Kind enumerates the error kinds the core surfaces, per spec.md §7.
type Kind string

const (
	KindConfigurationError       Kind = "ConfigurationError"
	KindInvalidCalendarReference Kind = "InvalidCalendarReference"
	KindMalformedConfiguration   Kind = "MalformedConfiguration"
)

// Error wraps a Kind and a human-readable message, adapted from
// aerr.Error so the core's error values marshal cleanly and compare by
// kind rather than by pointer identity.
type Error struct {
	kind    Kind
	message string
}

// New constructs an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return string(e.kind) + ": " + e.message
}

// Kind returns the error kind.
func (e *Error) Kind() Kind {
	if e == nil {
		return ""
	}
	return e.kind
}

// Is supports errors.Is against a bare Kind sentinel comparison via As.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.kind == e.kind
	}
	return false
}

// MarshalJSON renders the error as {"kind":..., "message":...}.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    Kind   `json:"kind"`
		Message string `json:"message"`
	}{Kind: e.kind, Message: e.message})
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}
