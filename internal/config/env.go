package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings
const (
	EnvDataDir        = "WEEKPLAN_DATA_DIR"
	EnvBackend        = "WEEKPLAN_BACKEND"
	EnvTheme          = "WEEKPLAN_THEME"
	EnvLogLevel       = "WEEKPLAN_LOG_LEVEL"
	EnvStrictReassign = "WEEKPLAN_STRICT_REASSIGN"
)

// LoadDotEnv reads KEY=value pairs from files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg fields from the environment
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		cfg.Storage.Dir = v
	}
	if v, ok := lookup(EnvBackend); ok && v != "" {
		cfg.Storage.Backend = v
	}
	if v, ok := lookup(EnvTheme); ok && v != "" {
		cfg.UI.Theme = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvStrictReassign); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrictReassign, err)
		}
		cfg.Schedule.StrictReassign = strict
	}
	return nil
}
