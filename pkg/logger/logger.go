package logger

import (
	"log/slog"
	"os"
)

// NewWithConfig builds a logger from cfg. When cfg.Sentry.DSN is set, records
// also go to Sentry. Extractors apply to every destination.
func NewWithConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	base := newBaseHandler(cfg)
	sinks := []slog.Handler{base}

	if cfg.Sentry.DSN != "" {
		sentryHandler, err := newSentryHandler(cfg.Sentry)
		if err != nil {
			slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			sinks = append(sinks, sentryHandler)
		}
	}

	return slog.New(newFanout(sinks, extractors))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newBaseHandler(cfg Config) slog.Handler {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == FormatText {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}
