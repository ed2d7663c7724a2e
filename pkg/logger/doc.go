// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// A ContextExtractor pulls a request-scoped attribute out of the context on
// every log call:
//
//	log := logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "submission relayed")
//	// {"level":"INFO","msg":"submission relayed","request_id":"01J..."}
//
// NewWithConfig reads LOG_LEVEL, LOG_FORMAT and the SENTRY_* settings from a
// Config populated by the env package. With SENTRY_DSN set, error records
// become Sentry issues and warnings are kept as Sentry logs; without it, or if
// Sentry fails to initialize, logs go to stdout only. Call Flush before exit.
package logger
