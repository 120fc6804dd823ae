package tracker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"readtrack/internal/bookshelf"
	"readtrack/internal/eventlog"
	"readtrack/internal/faults"
	"readtrack/internal/journal"
	"readtrack/internal/logging"
	"readtrack/internal/textutil"
)

// ShelfStore loads and saves whole bookshelf documents.
type ShelfStore interface {
	Load(ctx context.Context, events bookshelf.EventRecorder) (*bookshelf.Bookshelf, error)
	Save(ctx context.Context, shelf *bookshelf.Bookshelf) error
	Exists() bool
	Path() string
}

// ProgressJournal records progress updates.
type ProgressJournal interface {
	Record(ctx context.Context, entry journal.Entry) (journal.Entry, error)
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger; the tracker tags it with its component name.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithJournal records every progress update in j.
func WithJournal(j ProgressJournal) Option {
	return func(t *Tracker) {
		t.journal = j
	}
}

// WithSessionID stamps journal entries with id.
func WithSessionID(id string) Option {
	return func(t *Tracker) {
		t.sessionID = id
	}
}

// Tracker coordinates the bookshelf, its event log, and persistence.
type Tracker struct {
	store     ShelfStore
	events    *eventlog.Log
	shelf     *bookshelf.Bookshelf
	journal   ProgressJournal
	logger    *slog.Logger
	sessionID string
	validator *inputValidator
	dirty     bool
}

// New returns a tracker with an empty shelf. A nil events log is replaced by
// a fresh one.
func New(store ShelfStore, events *eventlog.Log, opts ...Option) *Tracker {
	if events == nil {
		events = eventlog.New()
	}
	t := &Tracker{
		store:     store,
		events:    events,
		shelf:     bookshelf.New(events),
		logger:    logging.NewNop(),
		validator: newInputValidator(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = logging.NewComponentLogger(t.logger, "tracker")
	return t
}

// Open loads the shelf document when it exists and keeps the empty shelf
// otherwise.
func (t *Tracker) Open(ctx context.Context) error {
	if t.store == nil || !t.store.Exists() {
		t.logger.Debug("no shelf document, starting empty")
		return nil
	}
	return t.Load(ctx)
}

// Shelf returns the current bookshelf.
func (t *Tracker) Shelf() *bookshelf.Bookshelf {
	return t.shelf
}

// Events returns the event log shared by the shelf and the tracker.
func (t *Tracker) Events() *eventlog.Log {
	return t.events
}

// Dirty reports whether the shelf changed since the last load or save.
func (t *Tracker) Dirty() bool {
	return t.dirty
}

// FindBook returns the first book titled title. An exact title wins; failing
// that, the first title equal under case folding and whitespace collapsing.
func (t *Tracker) FindBook(operation, title string) (*bookshelf.Book, error) {
	if book, _, ok := t.shelf.FindByTitle(title); ok {
		return book, nil
	}
	for _, book := range t.shelf.Books() {
		if textutil.EqualFold(book.Title, title) {
			return book, nil
		}
	}
	return nil, t.notFound(operation, title)
}

// AddBook validates input and appends a new book.
func (t *Tracker) AddBook(ctx context.Context, input AddBookInput) (*bookshelf.Book, error) {
	input.Title = textutil.NormalizeTitle(input.Title)
	tags := make([]string, len(input.GenreTags))
	for i, tag := range input.GenreTags {
		tags[i] = strings.TrimSpace(tag)
	}
	input.GenreTags = tags
	if err := t.validator.validate("add book", input); err != nil {
		return nil, err
	}

	book := bookshelf.NewBook(input.Title, input.TotalPages)
	for _, tag := range input.GenreTags {
		book.AddGenreTag(tag)
	}
	t.shelf.AddBook(book)
	t.dirty = true

	logging.WithContext(ctx, t.logger).Info("book added",
		logging.String(logging.FieldTitle, book.Title),
		logging.Int("total_pages", book.TotalPages),
		logging.Int("genre_tags", len(book.GenreTags)),
	)
	return book, nil
}

// UpdateProgress sets pages read on the first book titled title. The count
// must be non-negative and, for books with pages, no larger than the book.
func (t *Tracker) UpdateProgress(ctx context.Context, title string, pagesRead int) (*bookshelf.Book, error) {
	const op = "update progress"

	book, err := t.FindBook(op, title)
	if err != nil {
		return nil, err
	}
	if pagesRead < 0 {
		return nil, faults.Invalid(op, "pages read %d is negative", pagesRead)
	}
	if book.TotalPages > 0 && pagesRead > book.TotalPages {
		return nil, faults.Invalid(op, "pages read %d exceeds the %d pages of %q", pagesRead, book.TotalPages, book.Title)
	}

	book.SetPagesRead(pagesRead)
	t.dirty = true
	t.events.LogEvent(fmt.Sprintf("Updated <%s> to %d of %d pages", book.Title, book.PagesRead, book.TotalPages))

	logger := logging.WithContext(ctx, t.logger)
	logger.Info("progress updated",
		logging.String(logging.FieldTitle, book.Title),
		logging.Int("pages_read", book.PagesRead),
		logging.Float64("progress", bookshelf.RoundTenth(book.Progress())),
	)
	t.recordProgress(ctx, logger, book)
	return book, nil
}

func (t *Tracker) recordProgress(ctx context.Context, logger *slog.Logger, book *bookshelf.Book) {
	if t.journal == nil {
		return
	}
	_, err := t.journal.Record(ctx, journal.Entry{
		SessionID:  t.sessionID,
		Title:      book.Title,
		PagesRead:  book.PagesRead,
		TotalPages: book.TotalPages,
		Progress:   bookshelf.RoundTenth(book.Progress()),
	})
	if err != nil {
		logging.WarnWithContext(logger, "journal entry not recorded", "journal_record",
			logging.String(logging.FieldTitle, book.Title),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run readtrack doctor to check the journal database"),
			logging.String(logging.FieldImpact, "progress history is missing this update"),
		)
	}
}

// TagBook appends tags to the first book titled title. Blank tags are
// dropped; at least one tag must remain.
func (t *Tracker) TagBook(ctx context.Context, title string, tags ...string) (*bookshelf.Book, error) {
	const op = "tag book"

	book, err := t.FindBook(op, title)
	if err != nil {
		return nil, err
	}
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	if len(cleaned) == 0 {
		return nil, faults.Invalid(op, "at least one genre tag is required")
	}

	for _, tag := range cleaned {
		book.AddGenreTag(tag)
	}
	t.dirty = true
	t.events.LogEvent(fmt.Sprintf("Tagged <%s> with %s", book.Title, strings.Join(cleaned, ", ")))

	logging.WithContext(ctx, t.logger).Info("book tagged",
		logging.String(logging.FieldTitle, book.Title),
		logging.String("tags", strings.Join(cleaned, ";")),
	)
	return book, nil
}

// Report summarizes the current shelf.
func (t *Tracker) Report() Report {
	return BuildReport(t.shelf)
}

// Save writes the shelf document and clears the dirty flag.
func (t *Tracker) Save(ctx context.Context) error {
	if t.store == nil {
		return faults.Invalid("save shelf", "no shelf file configured")
	}
	logger := logging.WithContext(ctx, t.logger)
	if err := t.store.Save(ctx, t.shelf); err != nil {
		logger.Error("shelf save failed", logging.Args(logging.ErrorAttrs(err)...)...)
		return err
	}
	t.dirty = false
	t.events.LogEvent("Saved bookshelf to " + t.store.Path())
	logger.Info("shelf saved", logging.String("path", t.store.Path()), logging.Int("books", t.shelf.BookCount()))
	return nil
}

// Load replaces the shelf with the stored document. A failed load leaves the
// current shelf untouched.
func (t *Tracker) Load(ctx context.Context) error {
	if t.store == nil {
		return faults.Invalid("load shelf", "no shelf file configured")
	}
	logger := logging.WithContext(ctx, t.logger)
	shelf, err := t.store.Load(ctx, t.events)
	if err != nil {
		attrs := logging.ErrorAttrs(err)
		if errors.Is(err, fs.ErrNotExist) {
			attrs = append(attrs, logging.String(logging.FieldErrorHint, "save the shelf first or check paths.shelf_file"))
		}
		logger.Error("shelf load failed", logging.Args(attrs...)...)
		return err
	}
	t.shelf = shelf
	t.dirty = false
	t.events.LogEvent("Loaded bookshelf from " + t.store.Path())
	logger.Info("shelf loaded", logging.String("path", t.store.Path()), logging.Int("books", shelf.BookCount()))
	return nil
}

func (t *Tracker) notFound(operation, title string) error {
	books := t.shelf.Books()
	titles := make([]string, 0, len(books))
	for _, b := range books {
		titles = append(titles, b.Title)
	}
	message := fmt.Sprintf("no book titled %q", title)
	if suggestion, _, ok := textutil.ClosestTitle(title, titles); ok {
		message += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return faults.Wrap(faults.ErrNotFound, operation, message, nil)
}
