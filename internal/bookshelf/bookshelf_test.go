package bookshelf

import (
	"reflect"
	"testing"
)

type recorder struct {
	events []string
}

func (r *recorder) LogEvent(description string) {
	r.events = append(r.events, description)
}

func newTagged(title string, total, read int, tags ...string) *Book {
	b := NewBook(title, total)
	b.SetPagesRead(read)
	for _, tag := range tags {
		b.AddGenreTag(tag)
	}
	return b
}

func TestNewBookshelfIsEmpty(t *testing.T) {
	s := New(nil)
	if s.BookCount() != 0 || len(s.Books()) != 0 {
		t.Fatalf("expected empty shelf, got %d books", s.BookCount())
	}
	if s.GenreCount() != 0 || len(s.GenreIndex()) != 0 {
		t.Fatalf("expected no genres, got %v", s.GenreIndex())
	}
	if s.AggregateProgress() != 0 {
		t.Fatalf("expected 0 progress, got %v", s.AggregateProgress())
	}
}

func TestAddBookCountsAndLogs(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	titles := []string{"Dune", "Emma", "Ulysses"}
	for i, title := range titles {
		s.AddBook(NewBook(title, 100))
		if s.BookCount() != i+1 || len(s.Books()) != i+1 {
			t.Fatalf("after %d adds: BookCount=%d len=%d", i+1, s.BookCount(), len(s.Books()))
		}
	}
	want := []string{
		"Added <Dune> to bookshelf!",
		"Added <Emma> to bookshelf!",
		"Added <Ulysses> to bookshelf!",
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i, b := range s.Books() {
		if b.Title != titles[i] {
			t.Fatalf("book %d = %q, want %q", i, b.Title, titles[i])
		}
	}
}

func TestBooksTaggedByPreservesOrder(t *testing.T) {
	s := New(nil)
	a := newTagged("A", 10, 0, "Fiction")
	b := newTagged("B", 10, 0, "Drama")
	c := newTagged("C", 10, 0, "Drama", "Fiction")
	d := newTagged("D", 10, 0, "Fiction", "Fiction")
	for _, book := range []*Book{a, b, c, d} {
		s.AddBook(book)
	}

	got := s.BooksTaggedBy("Fiction")
	want := []*Book{a, c, d}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BooksTaggedBy = %v, want %v", titlesOf(got), titlesOf(want))
	}
	for _, genre := range []string{"Fiction", "Drama", "Poetry", "fiction"} {
		if s.CountTaggedBy(genre) != len(s.BooksTaggedBy(genre)) {
			t.Fatalf("CountTaggedBy(%q) disagrees with BooksTaggedBy", genre)
		}
	}
	if s.CountTaggedBy("Poetry") != 0 {
		t.Fatal("expected no poetry")
	}
}

func TestGenreIndexFirstSeenOrder(t *testing.T) {
	s := New(nil)
	s.AddBook(newTagged("A", 10, 0, "Fiction", "Drama"))
	s.AddBook(newTagged("B", 10, 0, "Drama", "Mystery"))

	want := []string{"Fiction", "Drama", "Mystery"}
	if got := s.GenreIndex(); !reflect.DeepEqual(got, want) {
		t.Fatalf("GenreIndex = %v, want %v", got, want)
	}
	if s.GenreCount() != 3 {
		t.Fatalf("GenreCount = %d, want 3", s.GenreCount())
	}
}

func TestGenreIndexTracksMutation(t *testing.T) {
	s := New(nil)
	b := newTagged("A", 10, 0, "Fiction")
	s.AddBook(b)
	if s.GenreCount() != 1 {
		t.Fatalf("GenreCount = %d, want 1", s.GenreCount())
	}
	b.AddGenreTag("Horror")
	if got := s.GenreIndex(); !reflect.DeepEqual(got, []string{"Fiction", "Horror"}) {
		t.Fatalf("GenreIndex after tagging = %v", got)
	}
}

func TestAggregateProgress(t *testing.T) {
	s := New(nil)
	s.AddBook(newTagged("A", 100, 50))
	s.AddBook(newTagged("B", 100, 25))
	s.AddBook(newTagged("C", 100, 100))
	if got := s.AggregateProgress(); got != 58.3 {
		t.Fatalf("AggregateProgress = %v, want 58.3", got)
	}
}

func TestAggregateProgressWithZeroPageBook(t *testing.T) {
	s := New(nil)
	s.AddBook(newTagged("A", 100, 50))
	s.AddBook(newTagged("Empty", 0, 0))
	if got := s.AggregateProgress(); got != 25 {
		t.Fatalf("AggregateProgress = %v, want 25", got)
	}
}

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{58.333333, 58.3},
		{12.25, 12.3},
		{12.24, 12.2},
		{28.749999999999996, 28.8},
		{66.666666, 66.7},
		{100, 100},
	}
	for _, tt := range tests {
		if got := RoundTenth(tt.in); got != tt.want {
			t.Fatalf("RoundTenth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAggregateProgressRoundsHalfTenthsUp(t *testing.T) {
	tests := []struct {
		read, total int
		want        float64
	}{
		{23, 80, 28.8},
		{41, 80, 51.3},
		{1, 8, 12.5},
		{1, 400, 0.3},
	}
	for _, tt := range tests {
		s := New(nil)
		s.AddBook(newTagged("Book", tt.total, tt.read))
		if got := s.AggregateProgress(); got != tt.want {
			t.Fatalf("%d/%d: AggregateProgress = %v, want %v", tt.read, tt.total, got, tt.want)
		}
	}
}

func TestAggregateProgressHalfTenthSweep(t *testing.T) {
	for total := 1; total <= 2000; total++ {
		for read := 0; read <= total; read++ {
			// Progress in thousandths of a percent; only exact x.x5 values matter here.
			scaled := read * 100000
			if scaled%total != 0 || (scaled/total)%100 != 50 {
				continue
			}
			want := float64((scaled/total+50)/100) / 10
			s := New(nil)
			s.AddBook(newTagged("Book", total, read))
			if got := s.AggregateProgress(); got != want {
				t.Fatalf("%d/%d: AggregateProgress = %v, want %v", read, total, got, want)
			}
		}
	}
}

func TestFindByTitleReturnsFirstMatch(t *testing.T) {
	s := New(nil)
	first := NewBook("Dune", 100)
	second := NewBook("Dune", 200)
	s.AddBook(NewBook("Emma", 50))
	s.AddBook(first)
	s.AddBook(second)

	got, idx, ok := s.FindByTitle("Dune")
	if !ok || got != first || idx != 1 {
		t.Fatalf("FindByTitle = %v, %d, %v", got, idx, ok)
	}
	if _, _, ok := s.FindByTitle("Missing"); ok {
		t.Fatal("expected no match")
	}
}

func TestGenreSummaries(t *testing.T) {
	s := New(nil)
	s.AddBook(newTagged("A", 100, 100, "Fiction", "Drama"))
	s.AddBook(newTagged("B", 100, 0, "Drama"))
	s.AddBook(newTagged("C", 200, 50))

	want := []GenreSummary{
		{Genre: "Fiction", Books: 1, AverageProgress: 100},
		{Genre: "Drama", Books: 2, AverageProgress: 50},
	}
	if got := s.GenreSummaries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("GenreSummaries = %+v, want %+v", got, want)
	}
	if s.FinishedCount() != 1 {
		t.Fatalf("FinishedCount = %d, want 1", s.FinishedCount())
	}
}

func titlesOf(books []*Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}
