package engine

import (
	"fmt"
	"time"
)

// DataIntegrityError reports an unparsable persisted timestamp. Defaulting
// such values could wrongly suppress or trigger a break, so the evaluation
// fails instead.
type DataIntegrityError struct {
	Field string
	Value string
	Err   error
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *DataIntegrityError) Unwrap() error {
	return e.Err
}

// parseTimestamp parses a persisted RFC 3339 timestamp.
func parseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &DataIntegrityError{Field: field, Value: value, Err: err}
	}
	return t, nil
}

// FormatTimestamp renders a time in the persisted document format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
