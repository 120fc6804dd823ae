package testsupport

import (
	"path/filepath"
	"testing"

	"readtrack/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.ShelfFile = filepath.Join(base, "data", "bookshelf.json")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Journal.Path = filepath.Join(base, "data", "journal.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithoutJournal disables the progress journal.
func WithoutJournal() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Journal.Enabled = false
	}
}

// WithoutAutosave disables saving after one-shot commands.
func WithoutAutosave() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Shelf.Autosave = false
	}
}

// WithShelfFile points the shelf document at name inside the temp data dir.
func WithShelfFile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.ShelfFile = filepath.Join(b.baseDir, "data", name)
	}
}

// WithEnsuredDirectories creates the configured directories up front.
func WithEnsuredDirectories() ConfigOption {
	return func(b *configBuilder) {
		if err := b.cfg.EnsureDirectories(); err != nil {
			b.t.Fatalf("ensure directories: %v", err)
		}
	}
}
