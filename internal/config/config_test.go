package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"readtrack/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("READTRACK_SHELF_FILE", "")
	t.Setenv("READTRACK_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "readtrack", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "readtrack")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.ShelfFile != filepath.Join(wantData, "bookshelf.json") {
		t.Fatalf("unexpected shelf file: %q", cfg.Paths.ShelfFile)
	}
	if cfg.Paths.LogDir != filepath.Join(wantData, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.JournalPath() != filepath.Join(wantData, "journal.db") {
		t.Fatalf("unexpected journal path: %q", cfg.JournalPath())
	}
	if cfg.LogFilePath() != filepath.Join(wantData, "logs", "readtrack.log") {
		t.Fatalf("unexpected log file: %q", cfg.LogFilePath())
	}
	if !cfg.Shelf.Autosave || !cfg.Shelf.Backup || !cfg.Journal.Enabled {
		t.Fatalf("unexpected toggles: %+v %+v", cfg.Shelf, cfg.Journal)
	}
	if cfg.LockTimeout().Seconds() != 5 {
		t.Fatalf("unexpected lock timeout %v", cfg.LockTimeout())
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomConfigFile(t *testing.T) {
	t.Setenv("READTRACK_SHELF_FILE", "")
	t.Setenv("READTRACK_LOG_LEVEL", "")
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	contents := struct {
		Paths   config.Paths   `toml:"paths"`
		Shelf   config.Shelf   `toml:"shelf"`
		Logging config.Logging `toml:"logging"`
	}{
		Paths: config.Paths{
			DataDir:   filepath.Join(dir, "data"),
			ShelfFile: filepath.Join(dir, "shelves", "mine.json"),
		},
		Shelf: config.Shelf{
			Autosave:           false,
			LockTimeoutSeconds: 2,
		},
		Logging: config.Logging{
			Format: "JSON",
			Level:  "Debug",
		},
	}
	data, err := toml.Marshal(contents)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != cfgPath {
		t.Fatalf("expected %q to be used, got %q (exists=%v)", cfgPath, resolved, exists)
	}
	if cfg.Paths.ShelfFile != filepath.Join(dir, "shelves", "mine.json") {
		t.Fatalf("unexpected shelf file %q", cfg.Paths.ShelfFile)
	}
	if cfg.Shelf.Autosave {
		t.Fatal("expected autosave disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging, got %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, want := range []string{filepath.Join(dir, "data"), filepath.Join(dir, "data", "logs"), filepath.Join(dir, "shelves")} {
		if info, err := os.Stat(want); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", want, err)
		}
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	shelf := filepath.Join(t.TempDir(), "env.json")
	t.Setenv("READTRACK_SHELF_FILE", shelf)
	t.Setenv("READTRACK_LOG_LEVEL", "warn")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.ShelfFile != shelf {
		t.Fatalf("expected env shelf file, got %q", cfg.Paths.ShelfFile)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env log level, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("READTRACK_SHELF_FILE", "")
	t.Setenv("READTRACK_LOG_LEVEL", "")
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"negative timeout", "[shelf]\nlock_timeout_seconds = -1\n", "lock_timeout_seconds"},
		{"unknown key", "[shelf]\nautosafe = true\n", "parse config"},
		{"broken toml", "[paths\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")
			content := "[paths]\ndata_dir = \"" + filepath.ToSlash(dir) + "\"\n" + tt.content
			if strings.HasPrefix(tt.content, "[paths") {
				content = tt.content
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestShelfFileMustNotBeDirectory(t *testing.T) {
	t.Setenv("READTRACK_SHELF_FILE", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	if _, _, _, err := config.Load(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Fatal("expected error for directory shelf file")
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("READTRACK_SHELF_FILE", "")
	t.Setenv("READTRACK_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected sample logging format %q", cfg.Logging.Format)
	}
}
