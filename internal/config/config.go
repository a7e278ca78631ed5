// Package config provides centralized configuration management for the
// pipeline. It loads configuration from environment variables with sensible
// defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"strings"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Data     DataConfig
	Output   OutputConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// DataConfig holds source data settings.
type DataConfig struct {
	// Root is the directory containing one folder per state (required).
	// Each state folder holds category subfolders (Hunt, Fish) of source
	// files.
	Root string `env:"DATA_ROOT" required:"true"`

	// States is the ordered list of state folders to process.
	// Comma-separated; each name must have a registered transform.
	States []string `env:"DATA_STATES" default:"Nebraska,North Dakota"`
}

// OutputConfig holds corpus output settings.
type OutputConfig struct {
	// Path is where the standardized corpus CSV is written (default: corpus.csv)
	Path string `env:"OUTPUT_PATH" default:"corpus.csv"`
}

// DatabaseConfig holds the optional Postgres sink settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string. When empty, the database
	// sink is disabled and the corpus is only written to OUTPUT_PATH.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility.
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// Table is the table the corpus is loaded into (default: license_holders)
	Table string `env:"DB_TABLE" default:"license_holders"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Data.Root == "" {
		errs = append(errs, "DATA_ROOT is required")
	}
	if len(c.Data.States) == 0 {
		errs = append(errs, "DATA_STATES must name at least one state")
	}

	if c.Output.Path == "" {
		errs = append(errs, "OUTPUT_PATH must not be empty")
	}

	if c.Database.URL != "" && c.Database.Table == "" {
		errs = append(errs, "DB_TABLE must not be empty when DATABASE_URL is set")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a safe string representation of the config for logging.
// Sensitive values like database URLs are masked.
func (c *Config) String() string {
	db := "disabled"
	if c.Database.URL != "" {
		db = fmt.Sprintf("{URL: [MASKED], Table: %q}", c.Database.Table)
	}
	return fmt.Sprintf("Config{Data: {Root: %q, States: %v}, Output: {Path: %q}, Database: %s, Logging: {Level: %q, Format: %q}}",
		c.Data.Root, c.Data.States, c.Output.Path, db, c.Logging.Level, c.Logging.Format)
}
