package genpipe

import "fmt"

// ValidationError reports a malformed or out-of-range request field.
// Requests failing validation are rejected before any provider call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MissingFieldError reports a template field that was not supplied.
type MissingFieldError struct {
	Template string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("template %s: missing field %q", e.Template, e.Field)
}

// ExtractionError indicates the model returned text that could not be
// parsed as, or did not conform to, the target schema. Raw carries the
// original response for diagnostics.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
