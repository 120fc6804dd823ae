package shelfstore

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"readtrack/internal/bookshelf"
	"readtrack/internal/faults"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type shelfDocument struct {
	CollectionOfBooks *[]bookRecord `json:"collectionOfBooks"`
}

type bookRecord struct {
	Title      *string   `json:"title"`
	TotalPages *int      `json:"totalPages"`
	PagesRead  *int      `json:"pagesRead"`
	GenreTags  *[]string `json:"genreTags"`
}

// Marshal renders shelf as an indented JSON document.
func Marshal(shelf *bookshelf.Bookshelf) ([]byte, error) {
	books := shelf.Books()
	records := make([]bookRecord, 0, len(books))
	for _, b := range books {
		title := b.Title
		total := b.TotalPages
		read := b.PagesRead
		tags := append([]string{}, b.GenreTags...)
		records = append(records, bookRecord{
			Title:      &title,
			TotalPages: &total,
			PagesRead:  &read,
			GenreTags:  &tags,
		})
	}
	data, err := json.MarshalIndent(shelfDocument{CollectionOfBooks: &records}, "", "  ")
	if err != nil {
		return nil, faults.Wrap(faults.ErrMalformedData, "encode shelf", "", err)
	}
	return append(data, '\n'), nil
}

// Encode writes shelf to w as a JSON document.
func Encode(w io.Writer, shelf *bookshelf.Bookshelf) error {
	data, err := Marshal(shelf)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return faults.Wrap(faults.ErrIOFailure, "encode shelf", "write", err)
	}
	return nil
}

// Unmarshal rebuilds a bookshelf from data. Each book is added through
// AddBook, so events receives one entry per loaded book.
func Unmarshal(data []byte, events bookshelf.EventRecorder) (*bookshelf.Bookshelf, error) {
	if !json.Valid(data) {
		return nil, faults.Wrap(faults.ErrMalformedData, "decode shelf", "document is not valid JSON", nil)
	}
	var doc shelfDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, faults.Wrap(faults.ErrMalformedData, "decode shelf", "", err)
	}
	if doc.CollectionOfBooks == nil {
		return nil, faults.Wrap(faults.ErrMalformedData, "decode shelf", `missing "collectionOfBooks"`, nil)
	}

	books := make([]*bookshelf.Book, 0, len(*doc.CollectionOfBooks))
	for i, rec := range *doc.CollectionOfBooks {
		book, err := rec.toBook()
		if err != nil {
			return nil, faults.Wrap(faults.ErrMalformedData, "decode shelf", fmt.Sprintf("book %d", i), err)
		}
		books = append(books, book)
	}

	shelf := bookshelf.New(events)
	for _, b := range books {
		shelf.AddBook(b)
	}
	return shelf, nil
}

// Decode reads a whole document from r and rebuilds the bookshelf.
func Decode(r io.Reader, events bookshelf.EventRecorder) (*bookshelf.Bookshelf, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIOFailure, "decode shelf", "read", err)
	}
	return Unmarshal(data, events)
}

func (r bookRecord) toBook() (*bookshelf.Book, error) {
	switch {
	case r.Title == nil:
		return nil, missingField("title")
	case r.TotalPages == nil:
		return nil, missingField("totalPages")
	case r.PagesRead == nil:
		return nil, missingField("pagesRead")
	case r.GenreTags == nil:
		return nil, missingField("genreTags")
	}
	book := bookshelf.NewBook(*r.Title, *r.TotalPages)
	book.SetPagesRead(*r.PagesRead)
	for _, tag := range *r.GenreTags {
		book.AddGenreTag(tag)
	}
	return book, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing %q", name)
}
