package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeJournal(); err != nil {
		return err
	}
	c.normalizeShelf()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}

	if value, ok := os.LookupEnv("READTRACK_SHELF_FILE"); ok && strings.TrimSpace(value) != "" {
		c.Paths.ShelfFile = value
	}
	if strings.TrimSpace(c.Paths.ShelfFile) == "" {
		c.Paths.ShelfFile = filepath.Join(c.Paths.DataDir, defaultShelfFileName)
	}
	if c.Paths.ShelfFile, err = expandPath(strings.TrimSpace(c.Paths.ShelfFile)); err != nil {
		return fmt.Errorf("paths.shelf_file: %w", err)
	}

	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.DataDir, defaultLogDirName)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeJournal() error {
	c.Journal.Path = strings.TrimSpace(c.Journal.Path)
	if c.Journal.Path == "" {
		return nil
	}
	var err error
	if c.Journal.Path, err = expandPath(c.Journal.Path); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeShelf() {
	if c.Shelf.LockTimeoutSeconds == 0 {
		c.Shelf.LockTimeoutSeconds = defaultLockTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("READTRACK_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
