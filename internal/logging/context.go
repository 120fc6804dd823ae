package logging

import (
	"context"
	"log/slog"

	"readtrack/internal/faults"
)

const (
	// FieldComponent names the package or subsystem emitting the record.
	FieldComponent = "component"
	// FieldCommand names the CLI command or shell verb being executed.
	FieldCommand = "command"
	// FieldSessionID identifies one process invocation.
	FieldSessionID = "session_id"
	// FieldTitle carries the book title a record refers to.
	FieldTitle = "title"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldErrorKind carries faults.Kind for a failed operation.
	FieldErrorKind = "error_kind"
	// FieldImpact describes the user-facing consequence of a warning.
	FieldImpact = "impact"
)

// ContextFields extracts standardized slog attributes from the provided context.
// The session identifier is injected by the session handler and is not repeated here.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	if command, ok := faults.CommandFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCommand, command))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}

// ErrorAttrs returns the error plus its fault classification.
func ErrorAttrs(err error) []Attr {
	attrs := []Attr{Error(err)}
	if kind := faults.Kind(err); kind != "" {
		attrs = append(attrs, String(FieldErrorKind, kind))
	}
	return attrs
}
