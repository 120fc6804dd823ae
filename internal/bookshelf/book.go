package bookshelf

import (
	"slices"
	"strings"

	"readtrack/internal/faults"
)

// Book is a single title on the shelf.
type Book struct {
	Title      string
	TotalPages int
	PagesRead  int
	GenreTags  []string
}

// NewBook returns a book with nothing read and no tags. No validation is applied.
func NewBook(title string, totalPages int) *Book {
	return &Book{Title: title, TotalPages: totalPages, GenreTags: []string{}}
}

// AddGenreTag appends tag. Duplicates are kept.
func (b *Book) AddGenreTag(tag string) {
	b.GenreTags = append(b.GenreTags, tag)
}

// ContainsGenreTag reports whether any tag equals tag exactly.
func (b *Book) ContainsGenreTag(tag string) bool {
	return slices.Contains(b.GenreTags, tag)
}

// SetPagesRead overwrites the pages read count.
func (b *Book) SetPagesRead(n int) {
	b.PagesRead = n
}

// ComputeProgress returns pagesRead*100/totalPages. A book without pages has
// no defined progress; it reports 0 together with faults.ErrDivisionByZero.
func (b *Book) ComputeProgress() (float64, error) {
	if b.TotalPages == 0 {
		return 0, faults.ErrDivisionByZero
	}
	return float64(b.PagesRead) * 100 / float64(b.TotalPages), nil
}

// Progress is ComputeProgress with the zero-page fallback applied.
func (b *Book) Progress() float64 {
	p, _ := b.ComputeProgress()
	return p
}

// Remaining returns the number of pages left, never negative.
func (b *Book) Remaining() int {
	return max(b.TotalPages-b.PagesRead, 0)
}

// Finished reports whether every page has been read.
func (b *Book) Finished() bool {
	return b.TotalPages > 0 && b.PagesRead >= b.TotalPages
}

// Clone returns a deep copy of b.
func (b *Book) Clone() *Book {
	clone := *b
	clone.GenreTags = append([]string{}, b.GenreTags...)
	return &clone
}

// ParseGenreTags splits a semicolon separated tag list, trimming whitespace and
// dropping empty entries.
func ParseGenreTags(raw string) []string {
	parts := strings.Split(raw, ";")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
