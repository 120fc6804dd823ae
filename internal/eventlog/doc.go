// Package eventlog records human-readable descriptions of mutating actions for
// later review.
//
// A Log is an append-only, in-memory audit trail. It is constructed explicitly
// by the application context and handed to whatever mutates a bookshelf, so
// tests can own an isolated instance. Nothing is ever removed or persisted; the
// command layer prints the history when a session ends.
package eventlog
