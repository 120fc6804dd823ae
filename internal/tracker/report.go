package tracker

import (
	"errors"

	"readtrack/internal/bookshelf"
	"readtrack/internal/faults"
)

// Report is the summary shown by the report command.
type Report struct {
	BookCount         int                      `json:"bookCount"`
	FinishedCount     int                      `json:"finishedCount"`
	GenreCount        int                      `json:"genreCount"`
	Genres            []string                 `json:"genres"`
	AggregateProgress float64                  `json:"aggregateProgress"`
	PagesRead         int                      `json:"pagesRead"`
	PagesRemaining    int                      `json:"pagesRemaining"`
	ByGenre           []bookshelf.GenreSummary `json:"byGenre"`
	// WithoutPages lists books whose progress is undefined and counted as 0.
	WithoutPages []string `json:"withoutPages"`
}

// BuildReport derives a Report from shelf.
func BuildReport(shelf *bookshelf.Bookshelf) Report {
	r := Report{
		BookCount:         shelf.BookCount(),
		FinishedCount:     shelf.FinishedCount(),
		GenreCount:        shelf.GenreCount(),
		Genres:            shelf.GenreIndex(),
		AggregateProgress: shelf.AggregateProgress(),
		ByGenre:           shelf.GenreSummaries(),
		WithoutPages:      []string{},
	}
	for _, b := range shelf.Books() {
		r.PagesRead += b.PagesRead
		r.PagesRemaining += b.Remaining()
		if _, err := b.ComputeProgress(); errors.Is(err, faults.ErrDivisionByZero) {
			r.WithoutPages = append(r.WithoutPages, b.Title)
		}
	}
	return r
}
