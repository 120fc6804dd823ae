// Package shelfstore reads and writes bookshelves as JSON documents.
//
// The document is a single object with a "collectionOfBooks" array; each entry
// carries title, totalPages, pagesRead and genreTags. Derived statistics are
// never written because the bookshelf recomputes them on read. Loading is all or
// nothing: any structural problem fails the whole document with
// faults.ErrMalformedData, and filesystem problems surface as
// faults.ErrIOFailure. Saves encode in memory first and replace the file with
// a rename, holding an advisory lock next to the shelf file for the duration.
package shelfstore
