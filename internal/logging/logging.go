// Package logging builds the leveled logger used across weekplan.
//
// The TUI owns the terminal, so the logger writes to a file instead of
// stderr. Verbose mode forces debug level.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options configures a logger
type Options struct {
	Level   string
	Path    string
	Verbose bool
}

// New opens (or creates) the log file at opts.Path and returns a logger
// writing logfmt lines to it, plus the closer for the file.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if opts.Verbose {
		level = log.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(f, level), f, nil
}

// NewWriter returns a logger writing to w at the given level
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          "weekplan",
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}
