package bsrel

import "strings"

// ValidationError describes a single I1-I6 invariant failure: the
// field path it concerns, the invariant tag that was violated, and a
// human-readable message. Adapted from aerr.ValidationError, trimmed
// to this core's needs (no SysError — C3 never wraps a deeper system
// error, per spec.md §7 "does not surface a cause").
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	return ve.Message
}

// ValidationErrors aggregates every invariant failure found during a
// single CheckReliability pass.
type ValidationErrors []*ValidationError

// Add appends a new ValidationError to the slice.
func (ves *ValidationErrors) Add(ve *ValidationError) {
	*ves = append(*ves, ve)
}

// Error implements the error interface for ValidationErrors, joining
// every individual message.
func (ves ValidationErrors) Error() string {
	messages := make([]string, 0, len(ves))
	for _, ve := range ves {
		messages = append(messages, ve.Error())
	}
	return strings.Join(messages, "; ")
}
