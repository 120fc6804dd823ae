// Package config loads, normalizes, and validates readtrack configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// READTRACK_SHELF_FILE. The Config type centralizes every knob the CLI needs so
// the shelf file, journal database, and log directory are discovered in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
