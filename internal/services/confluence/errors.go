package confluence

import "fmt"

// MissingFieldError reports a snapshot lacking an indicator value the
// evaluators read. The engine fails fast on it so a partially-evaluated bias
// can never be mistaken for a complete one.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("snapshot missing required field %q", e.Field)
}

// InvalidValueError reports a required numeric field that is NaN, infinite,
// or violates a stated invariant.
type InvalidValueError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("snapshot field %q invalid (%v): %s", e.Field, e.Value, e.Reason)
}
