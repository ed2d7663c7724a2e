package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/ELQUIA-Mainnki/reception/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that bounds the request context with a deadline.
// Handlers pass c (or c.Context()) to outbound calls, which then give up when
// the deadline passes. If the deadline was exceeded and nothing has been
// written yet, a TimeoutError wrapping the handler's error is returned.
// A non-positive timeout means DefaultTimeout.
//
// The handler runs on the request goroutine, so the response is never
// written from two goroutines.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.SetContext(ctx)
			err := next(c)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Written() {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout, Err: err}
			}

			return err
		}
	}
}
