// Package bookshelf models books and the bookshelf that owns them.
//
// A Book tracks its page count, pages read, and genre tags, and derives its own
// progress percentage. A Bookshelf keeps books in insertion order and derives
// summary statistics (genre index, aggregate progress, per-genre summaries) on
// every read, so there is never a stale cached value to refresh.
//
// The package performs no input validation beyond what the arithmetic needs;
// bounds on titles and page counts are enforced by the tracker before values
// reach this layer.
package bookshelf
