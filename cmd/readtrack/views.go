package main

import (
	"fmt"
	"strconv"
	"strings"

	"readtrack/internal/bookshelf"
	"readtrack/internal/textutil"
)

// bookView is the JSON shape of one book in list output.
type bookView struct {
	Title      string   `json:"title"`
	TotalPages int      `json:"totalPages"`
	PagesRead  int      `json:"pagesRead"`
	Progress   float64  `json:"progress"`
	Finished   bool     `json:"finished"`
	GenreTags  []string `json:"genreTags"`
}

func newBookView(b *bookshelf.Book) bookView {
	return bookView{
		Title:      b.Title,
		TotalPages: b.TotalPages,
		PagesRead:  b.PagesRead,
		Progress:   bookshelf.RoundTenth(b.Progress()),
		Finished:   b.Finished(),
		GenreTags:  append([]string{}, b.GenreTags...),
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(bookshelf.RoundTenth(v), 'f', 1, 64) + "%"
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

func booksTable(books []*bookshelf.Book) string {
	rows := make([][]string, 0, len(books))
	var read, total int
	for i, b := range books {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.Title,
			strconv.Itoa(b.PagesRead),
			strconv.Itoa(b.TotalPages),
			formatPercent(b.Progress()),
			formatTags(b.GenreTags),
		})
		read += b.PagesRead
		total += b.TotalPages
	}
	return renderTable(tableView{
		Headers: []string{"#", "Title", "Read", "Pages", "Progress", "Genres"},
		Aligns:  []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft},
		Rows:    rows,
		Footer:  []string{"", fmt.Sprintf("%d books", len(books)), strconv.Itoa(read), strconv.Itoa(total), "", ""},
	})
}

func genresTable(summaries []bookshelf.GenreSummary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			textutil.DisplayTitle(s.Genre),
			strconv.Itoa(s.Books),
			formatPercent(s.AverageProgress),
		})
	}
	return renderTable(tableView{
		Headers: []string{"Genre", "Books", "Avg progress"},
		Aligns:  []columnAlignment{alignLeft, alignRight, alignRight},
		Rows:    rows,
	})
}

func progressLine(b *bookshelf.Book) string {
	return fmt.Sprintf("%s: %d/%d pages (%s)", b.Title, b.PagesRead, b.TotalPages, formatPercent(b.Progress()))
}
