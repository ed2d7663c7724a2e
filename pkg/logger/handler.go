package logger

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// ContextExtractor pulls a request-scoped attribute out of ctx.
// It runs on every log call, so values set later in the request are seen.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// fanout adds extracted context attributes to each record and hands it to
// every sink enabled for the record's level.
type fanout struct {
	sinks      []slog.Handler
	extractors []ContextExtractor
}

func newFanout(sinks []slog.Handler, extractors []ContextExtractor) *fanout {
	extractors = slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool {
		return ex == nil
	})
	return &fanout{sinks: sinks, extractors: extractors}
}

func (h *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(h.sinks, func(s slog.Handler) bool {
		return s.Enabled(ctx, level)
	})
}

func (h *fanout) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}

	var errs []error
	for _, s := range h.sinks {
		if s.Enabled(ctx, rec.Level) {
			errs = append(errs, s.Handle(ctx, rec.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (h *fanout) WithGroup(name string) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (h *fanout) derive(fn func(slog.Handler) slog.Handler) *fanout {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, s := range h.sinks {
		sinks[i] = fn(s)
	}
	return &fanout{sinks: sinks, extractors: h.extractors}
}
