// Package internal provides the HTTP application core: App, Context,
// Router, handler and middleware types, errors and the server runtime.
//
// # Core Types
//
//   - App: orchestrates HTTP routing, middleware, health probes and graceful shutdown
//   - Context: request/response access, form binding and logging helpers
//   - Router: interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a router
//   - HandlerFunc: route handler that returns an error
//   - Middleware: wraps handlers to add cross-cutting concerns
//   - ErrorHandler: turns handler errors into responses
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to outbound
// calls. Deadline, Done, Err and Value delegate to the request context:
//
//	func (h *Submit) submit(c internal.Context) error {
//	    return h.mailer.Send(c, params)
//	}
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithCustomLogger(logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor())),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHandlers(submitHandler),
//	    internal.WithErrorHandler(handlers.ErrorHandler),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("resend", check)),
//	)
//	err := app.Run(":8080", internal.Logger(log))
//
// # Binding
//
// Bind decodes the form body into a struct with `form` tags, applies
// `sanitize` rules, then validates `validate` tags. Validation failures are
// returned as ValidationErrors, separate from system errors:
//
//	var req requests.Submission
//	verrs, err := c.Bind(&req)
//	if err != nil {
//	    return err
//	}
//	if len(verrs) > 0 {
//	    return c.Error(http.StatusBadRequest, "Invalid Submission", internal.WithError(verrs))
//	}
//
// # Error Handling
//
// A non-nil error returned from a handler or middleware reaches the app's
// ErrorHandler unless a response was already written. Without an
// ErrorHandler, HTTPError values are written with their code and message
// and everything else becomes a plain 500.
package internal
