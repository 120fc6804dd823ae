package logging

import (
	"context"
	"log/slog"

	"readtrack/internal/faults"
)

// sessionIDHandler stamps every record with a session_id. A session carried
// on the context wins over the one fixed at construction.
type sessionIDHandler struct {
	base      slog.Handler
	sessionID string
}

func newSessionIDHandler(base slog.Handler, sessionID string) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	return &sessionIDHandler{base: base, sessionID: sessionID}
}

func (h *sessionIDHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *sessionIDHandler) Handle(ctx context.Context, record slog.Record) error {
	id := h.sessionID
	if fromCtx, ok := faults.SessionIDFromContext(ctx); ok {
		id = fromCtx
	}
	if id != "" {
		record.AddAttrs(slog.String(FieldSessionID, id))
	}
	return h.base.Handle(ctx, record)
}

func (h *sessionIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sessionIDHandler{base: h.base.WithAttrs(attrs), sessionID: h.sessionID}
}

func (h *sessionIDHandler) WithGroup(name string) slog.Handler {
	return &sessionIDHandler{base: h.base.WithGroup(name), sessionID: h.sessionID}
}
