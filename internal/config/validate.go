package config

import (
	"errors"
	"fmt"
	"os"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateShelf(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.ShelfFile == "" {
		return errors.New("paths.shelf_file must be set")
	}
	if info, err := os.Stat(c.Paths.ShelfFile); err == nil && info.IsDir() {
		return fmt.Errorf("paths.shelf_file %q is a directory", c.Paths.ShelfFile)
	}
	return nil
}

func (c *Config) validateShelf() error {
	if c.Shelf.LockTimeoutSeconds < 0 {
		return errors.New("shelf.lock_timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (expected debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
