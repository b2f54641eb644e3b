package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordCountExceeded aborts a run that reads more records than allowed.
	ErrRecordCountExceeded = errors.New("convert: record count exceeded")

	// ErrSeatMismatch is returned when a hand's players differ from the seats
	// captured from the first hand.
	ErrSeatMismatch = errors.New("convert: players do not match seat map")
)

// RecordError ties a failure to the input line that caused it.
type RecordError struct {
	Line int
	Raw  string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Raw)
}

func (e *RecordError) Unwrap() error { return e.Err }
