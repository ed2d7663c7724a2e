package health

import "errors"

// ErrCheckTimeout is joined with a check's error when the shared deadline passed.
var ErrCheckTimeout = errors.New("health: check timeout")
