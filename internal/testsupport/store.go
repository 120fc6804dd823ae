package testsupport

import (
	"context"
	"testing"

	"readtrack/internal/config"
	"readtrack/internal/journal"
	"readtrack/internal/shelfstore"
)

// MustOpenJournal opens the configured journal for tests and registers cleanup.
func MustOpenJournal(t testing.TB, cfg *config.Config) *journal.Journal {
	t.Helper()

	j, err := journal.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = j.Close()
	})
	return j
}

// MustOpenShelfStore returns a shelf store configured from cfg.
func MustOpenShelfStore(t testing.TB, cfg *config.Config) *shelfstore.Store {
	t.Helper()

	store, err := shelfstore.New(
		cfg.Paths.ShelfFile,
		shelfstore.WithBackup(cfg.Shelf.Backup),
		shelfstore.WithLockTimeout(cfg.LockTimeout()),
	)
	if err != nil {
		t.Fatalf("shelfstore.New: %v", err)
	}
	return store
}
