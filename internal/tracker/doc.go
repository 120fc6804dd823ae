// Package tracker is the application context behind every readtrack command.
//
// A Tracker owns one bookshelf, the event log it reports to, the shelf store
// used for load and save, and the optional progress journal. It turns raw user
// input into validated operations, applies the bounds the bookshelf itself
// leaves open (pages read must fall within the book), and keeps a dirty flag
// so the CLI knows when an autosave is due. Journal failures are logged and
// never fail the operation that produced them.
package tracker
