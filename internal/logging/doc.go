// Package logging assembles structured slog loggers and formatting helpers used
// across readtrack.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so command code can tag log
// lines with the session identifier and the command being run. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// The CLI writes its own output to stdout; logs go to the configured log file
// and are teed to stderr only in verbose mode.
package logging
