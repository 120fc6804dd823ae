package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"readtrack/internal/config"
)

// recordedAtLayout is fixed width so recorded_at sorts chronologically as text.
const recordedAtLayout = "2006-01-02T15:04:05.000000000Z"

// Entry is one recorded progress update.
type Entry struct {
	ID         int64
	SessionID  string
	Title      string
	PagesRead  int
	TotalPages int
	Progress   float64
	RecordedAt time.Time
}

// Filter narrows List results. A zero Limit returns every entry.
type Filter struct {
	Title string
	Limit int
}

// Journal is the SQLite-backed progress history.
type Journal struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database configured in cfg.
func Open(ctx context.Context, cfg *config.Config) (*Journal, error) {
	return OpenPath(ctx, cfg.JournalPath())
}

// OpenPath initializes or connects to the journal database at path.
func OpenPath(ctx context.Context, path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	j := &Journal{db: db, path: path}
	if err := j.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

// Path returns the database location.
func (j *Journal) Path() string {
	return j.path
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record appends entry and returns it with ID and timestamp assigned. A zero
// RecordedAt is stamped with the current time.
func (j *Journal) Record(ctx context.Context, entry Entry) (Entry, error) {
	if strings.TrimSpace(entry.Title) == "" {
		return Entry{}, fmt.Errorf("record progress: title is required")
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	entry.RecordedAt = entry.RecordedAt.UTC()

	res, err := j.db.ExecContext(
		ctx,
		`INSERT INTO progress_entries (
            session_id, title, pages_read, total_pages, progress, recorded_at
        ) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Title,
		entry.PagesRead,
		entry.TotalPages,
		entry.Progress,
		entry.RecordedAt.Format(recordedAtLayout),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert progress entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("last insert id: %w", err)
	}
	entry.ID = id
	return entry, nil
}

// List returns entries newest first.
func (j *Journal) List(ctx context.Context, filter Filter) ([]Entry, error) {
	query := `SELECT id, session_id, title, pages_read, total_pages, progress, recorded_at FROM progress_entries`
	var args []any
	if title := strings.TrimSpace(filter.Title); title != "" {
		query += ` WHERE title = ?`
		args = append(args, title)
	}
	query += ` ORDER BY recorded_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list progress entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry      Entry
			recordedAt string
		)
		if err := rows.Scan(&entry.ID, &entry.SessionID, &entry.Title, &entry.PagesRead, &entry.TotalPages, &entry.Progress, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan progress entry: %w", err)
		}
		entry.RecordedAt, err = time.Parse(recordedAtLayout, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at %q: %w", recordedAt, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress entries: %w", err)
	}
	return entries, nil
}
