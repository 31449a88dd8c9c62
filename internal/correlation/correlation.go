// Package correlation threads a per-interaction id through context so every
// log record emitted while handling one menu action can be tied together.
package correlation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey struct{}

// NewID mints a fresh correlation id.
func NewID() string {
	return uuid.NewString()
}

// WithID returns a context carrying the given correlation id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the correlation id, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok
}

// Handler decorates log records with the correlation id from their context.
type Handler struct {
	inner slog.Handler
}

// NewHandler wraps an slog handler.
func NewHandler(inner slog.Handler) *Handler {
	return &Handler{inner: inner}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if id, ok := FromContext(ctx); ok {
		record.AddAttrs(slog.String("correlation_id", id))
	}
	return h.inner.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}
