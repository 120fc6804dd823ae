package bookshelf

import (
	"math"
	"slices"
)

// EventRecorder receives a description of each mutating action.
type EventRecorder interface {
	LogEvent(description string)
}

// GenreSummary aggregates the books carrying one genre tag.
type GenreSummary struct {
	Genre           string  `json:"genre"`
	Books           int     `json:"books"`
	AverageProgress float64 `json:"averageProgress"`
}

// Bookshelf owns an ordered collection of books.
type Bookshelf struct {
	books  []*Book
	events EventRecorder
}

// New returns an empty bookshelf. A nil recorder discards events.
func New(events EventRecorder) *Bookshelf {
	return &Bookshelf{books: []*Book{}, events: events}
}

// AddBook appends book and records one event naming it.
func (s *Bookshelf) AddBook(book *Book) {
	s.books = append(s.books, book)
	if s.events != nil {
		s.events.LogEvent("Added <" + book.Title + "> to bookshelf!")
	}
}

// Books returns the books in insertion order. The slice is a copy; the books
// are not.
func (s *Bookshelf) Books() []*Book {
	out := make([]*Book, len(s.books))
	copy(out, s.books)
	return out
}

// BookCount is always the number of books on the shelf.
func (s *Bookshelf) BookCount() int {
	return len(s.books)
}

// BooksTaggedBy returns, in shelf order, the books tagged with genre.
func (s *Bookshelf) BooksTaggedBy(genre string) []*Book {
	tagged := []*Book{}
	for _, b := range s.books {
		if b.ContainsGenreTag(genre) {
			tagged = append(tagged, b)
		}
	}
	return tagged
}

// CountTaggedBy returns len(BooksTaggedBy(genre)).
func (s *Bookshelf) CountTaggedBy(genre string) int {
	n := 0
	for _, b := range s.books {
		if b.ContainsGenreTag(genre) {
			n++
		}
	}
	return n
}

// GenreIndex rebuilds the list of distinct tags across all books, in
// book-then-tag order with the first occurrence winning.
func (s *Bookshelf) GenreIndex() []string {
	genres := []string{}
	for _, b := range s.books {
		for _, tag := range b.GenreTags {
			if !slices.Contains(genres, tag) {
				genres = append(genres, tag)
			}
		}
	}
	return genres
}

// GenreCount returns len(GenreIndex()).
func (s *Bookshelf) GenreCount() int {
	return len(s.GenreIndex())
}

// AggregateProgress averages every book's progress and rounds the result
// half-up to one decimal place. An empty shelf reports 0.
func (s *Bookshelf) AggregateProgress() float64 {
	return averageProgress(s.books)
}

// FindByTitle returns the first book whose title equals title, with its index.
func (s *Bookshelf) FindByTitle(title string) (*Book, int, bool) {
	for i, b := range s.books {
		if b.Title == title {
			return b, i, true
		}
	}
	return nil, -1, false
}

// FinishedCount returns the number of books read to the end.
func (s *Bookshelf) FinishedCount() int {
	n := 0
	for _, b := range s.books {
		if b.Finished() {
			n++
		}
	}
	return n
}

// GenreSummaries reports book count and average progress per genre, in
// GenreIndex order.
func (s *Bookshelf) GenreSummaries() []GenreSummary {
	genres := s.GenreIndex()
	summaries := make([]GenreSummary, 0, len(genres))
	for _, genre := range genres {
		tagged := s.BooksTaggedBy(genre)
		summaries = append(summaries, GenreSummary{
			Genre:           genre,
			Books:           len(tagged),
			AverageProgress: averageProgress(tagged),
		})
	}
	return summaries
}

// roundingSlack absorbs binary representation error so that values such as
// 28.749999999999996 (23 of 80 pages) still round up to 28.8.
const roundingSlack = 1e-9

// RoundTenth rounds v half-up to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Floor(v*10+0.5+roundingSlack) / 10
}

func averageProgress(books []*Book) float64 {
	if len(books) == 0 {
		return 0
	}
	var sum float64
	for _, b := range books {
		sum += b.Progress()
	}
	return RoundTenth(sum / float64(len(books)))
}
