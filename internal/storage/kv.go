// Package storage persists planner state in key-value slots.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Slot keys
const (
	TasksKey = "weekly_planner_tasks"
	ThemeKey = "weekly_planner_theme"
)

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrNotFound is returned by Get when the key has never been written
var ErrNotFound = errors.New("key not found")

// KV is a durable string-keyed byte store. Set overwrites wholesale.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Open creates the backend named by backend, rooted at dir
func Open(backend, dir string) (KV, error) {
	switch backend {
	case "", BackendFile:
		return NewFileKV(dir)
	case BackendSQLite:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return NewSQLiteKV(filepath.Join(dir, "weekplan.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
