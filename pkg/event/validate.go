package event

import (
	"fmt"
	"time"
)

// ValidationError reports input that must not reach the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid event: " + e.Reason
	}
	return fmt.Sprintf("invalid event %s: %s", e.Field, e.Reason)
}

// ValidateRange rejects empty or inverted time ranges.
func ValidateRange(start, end time.Time) error {
	if start.IsZero() {
		return &ValidationError{Field: "start", Reason: "start time is required"}
	}
	if end.IsZero() {
		return &ValidationError{Field: "end", Reason: "end time is required"}
	}
	if !start.Before(end) {
		return &ValidationError{Field: "end", Reason: "end time must be after start time"}
	}
	return nil
}

// Validate checks the draft before it is handed to the store.
func (d Draft) Validate() error {
	return ValidateRange(d.Start, d.End)
}

// Validate checks the event's time range.
func (e *Event) Validate() error {
	return ValidateRange(e.Start, e.End)
}
