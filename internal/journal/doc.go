// Package journal keeps an append-only SQLite record of reading progress.
//
// Every progress update made through the tracker is written as one row carrying
// the session that made it, the book title, and the page counts at that moment.
// Rows are never updated or deleted. The journal is optional: the tracker logs
// and ignores journal failures so the JSON shelf file stays the single source
// of truth for the collection itself.
//
// Schema changes bump schemaVersion in schema.go; an older database must be
// removed to adopt the new schema.
package journal
