package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrIOFailure      = errors.New("i/o failure")
	ErrMalformedData  = errors.New("malformed data")
	ErrDivisionByZero = errors.New("progress undefined for a book without pages")
	ErrNotFound       = errors.New("not found")
)

// Wrap builds an error message that includes operation context while tagging it
// with the provided marker. The marker should be one of the exported sentinel
// errors above; a nil marker defaults to ErrIOFailure.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrIOFailure
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Invalid is shorthand for an ErrInvalidInput failure without a cause.
func Invalid(operation, format string, args ...any) error {
	return Wrap(ErrInvalidInput, operation, fmt.Sprintf(format, args...), nil)
}

// Kind returns the short classification name of err, or "internal" when no
// marker is attached.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrMalformedData):
		return "malformed_data"
	case errors.Is(err, ErrIOFailure):
		return "io_failure"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failed"
	}
	return strings.Join(parts, ": ")
}
