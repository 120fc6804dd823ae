// Package main hosts the readtrack CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into tracker
// operations: adding books, recording progress, tagging, listing, reports,
// the progress journal, health checks, and configuration scaffolding. The
// shell command runs the same operations interactively through a verb
// dispatch table and prints the session's event log on exit.
//
// Keep this package lean: add behaviour to internal/tracker first, then
// surface it here as a command, a shell verb, or both.
package main
