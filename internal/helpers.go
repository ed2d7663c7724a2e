package internal

// ContextValue returns the value stored under key with type T,
// or the zero value when missing or of another type.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}
