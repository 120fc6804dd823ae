// Package faults defines the error markers shared by the bookshelf core, the
// persistence boundary, and the command layer.
//
// Every failure surfaced to a user carries exactly one marker (invalid input,
// I/O failure, malformed data, undefined progress, not found) so the CLI can
// report the kind of failure without string matching. Wrap attaches operation
// context while keeping both the marker and the underlying cause reachable via
// errors.Is. The package also carries the context helpers used to tag log lines
// with the current session.
package faults
