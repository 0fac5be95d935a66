package bmssp

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying each class of invalid input. Use errors.Is
// against these to classify a failure without parsing error text.
var (
	ErrInvalidGraph       = errors.New("bmssp: invalid graph")
	ErrInvalidWeights     = errors.New("bmssp: invalid weights")
	ErrInvalidSource      = errors.New("bmssp: invalid source")
	ErrInvalidEnabledMask = errors.New("bmssp: invalid enabled mask")
)

// ValidationError reports a single precondition violation: the offending
// field, what was observed, and what was expected of it.
type ValidationError struct {
	Kind     error
	Field    string
	Observed string
	Expected string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q: observed %s, expected %s", e.Kind, e.Field, e.Observed, e.Expected)
}

// Unwrap exposes the sentinel Kind so callers can use errors.Is.
func (e *ValidationError) Unwrap() error { return e.Kind }
