// Package middlewares provides the HTTP middleware used by the reception
// service.
//
// # Request ID
//
// RequestID assigns an ID to each request. An upstream X-Request-ID or
// X-Correlation-ID is reused when it is short printable ASCII; otherwise a
// ULID is generated. The ID is echoed in the X-Request-ID response header.
// Pair it with RequestIDExtractor so every log line carries request_id:
//
//	app := internal.New(
//	    internal.WithCustomLogger(logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor())),
//	    internal.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover converts a panic into a *PanicError for the global ErrorHandler.
// http.ErrAbortHandler is re-panicked.
//
//	internal.WithErrorHandler(func(c internal.Context, err error) error {
//	    if middlewares.IsPanicError(err) {
//	        return c.String(http.StatusInternalServerError, "Server Error")
//	    }
//	    return err
//	})
//
// # Timeout
//
// Timeout bounds the request context with a deadline. The handler runs on
// the request goroutine; outbound calls made with the request context give
// up at the deadline, and a *TimeoutError is returned if nothing was written.
//
//	internal.WithMiddleware(middlewares.Timeout(15 * time.Second))
//
// # CORS
//
// CORS answers preflight requests and decorates cross-origin responses.
// The defaults allow POST from any origin and expose X-Request-ID.
//
//	internal.WithMiddleware(
//	    middlewares.CORS(middlewares.WithAllowOrigins("https://example.jp")),
//	)
//
// Order matters: list RequestID first so later middleware and the error
// handler can read the ID.
package middlewares
