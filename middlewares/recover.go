package middlewares

import (
	"net/http"
	"runtime"

	"github.com/ELQUIA-Mainnki/reception/internal"
)

// maxPanicStack caps the goroutine stack captured for a panic.
const maxPanicStack = 4 << 10

// Recover turns a panic in the handler chain into a *PanicError carrying the
// panicking goroutine's stack and logs it with the request method and path.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recover() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				stack := make([]byte, maxPanicStack)
				stack = stack[:runtime.Stack(stack, false)]

				c.LogError("panic recovered",
					"panic", r,
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(stack),
				)
				err = &PanicError{Value: r, Stack: stack}
			}()

			return next(c)
		}
	}
}
