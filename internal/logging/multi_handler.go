package logging

import (
	"context"
	"log/slog"
	"slices"
)

// MultiHandler fans each record out to every destination handler. The
// CLI uses it to pair the console handler with an optional log file.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler wraps the given handlers into a single fan-out handler.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any destination accepts records at level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(h.handlers, func(d slog.Handler) bool {
		return d.Enabled(ctx, level)
	})
}

// Handle forwards the record to every destination enabled for its level.
// Every destination is attempted even when an earlier one fails; the
// first error is returned.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, d := range h.handlers {
		if !d.Enabled(ctx, r.Level) {
			continue
		}
		if err := d.Handle(ctx, r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// WithAttrs applies attrs to every destination.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewMultiHandler(h.each(func(d slog.Handler) slog.Handler {
		return d.WithAttrs(attrs)
	})...)
}

// WithGroup opens the group on every destination.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return NewMultiHandler(h.each(func(d slog.Handler) slog.Handler {
		return d.WithGroup(name)
	})...)
}

func (h *MultiHandler) each(f func(slog.Handler) slog.Handler) []slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, d := range h.handlers {
		out[i] = f(d)
	}
	return out
}
