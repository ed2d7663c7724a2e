package sanitizer

import "errors"

var (
	// ErrNotPointer is returned when SanitizeStruct receives a non-pointer value.
	ErrNotPointer = errors.New("sanitizer: target must be a non-nil pointer to a struct")

	// ErrUnknownRule is returned when a struct tag names an unsupported rule.
	ErrUnknownRule = errors.New("sanitizer: unknown rule")
)
