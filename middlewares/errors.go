package middlewares

import (
	"errors"
	"time"
)

// PanicError is returned by Recover when a handler panicked.
// Value and Stack go to the log; Error is safe to show to clients.
type PanicError struct {
	Value any
	Stack []byte // nil when stack capture is disabled
}

func (e *PanicError) Error() string {
	return "internal error"
}

// TimeoutError is returned by Timeout when the deadline passed before a
// response was written. Err is what the handler returned, if anything.
type TimeoutError struct {
	Err      error
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return "request timed out after " + e.Duration.String()
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// IsPanicError reports whether err is or wraps a PanicError.
func IsPanicError(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// IsTimeoutError reports whether err is or wraps a TimeoutError.
func IsTimeoutError(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
