package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("time conflict")
	ErrEmptyTitle   = errors.New("title is required")
	ErrInvalidDay   = errors.New("invalid day")
	ErrInvalidTime  = errors.New("invalid time, expected HH:MM")
	ErrInvalidRange = errors.New("end time must be after start time")

	ErrInvalidCategory = errors.New("unknown category")
)

// ConflictError reports that a task would overlap others on the same day
type ConflictError struct {
	Task Task   // The rejected candidate
	With []Task // Existing tasks it overlaps
}

func (e *ConflictError) Error() string {
	if len(e.With) == 0 {
		return fmt.Sprintf("%s on %s", ErrConflict, e.Task.Day.Title())
	}
	titles := make([]string, 0, len(e.With))
	for _, t := range e.With {
		titles = append(titles, fmt.Sprintf("%q (%s)", t.Title, t.TimeRange()))
	}
	return fmt.Sprintf("%s on %s with %s", ErrConflict, e.Task.Day.Title(), strings.Join(titles, ", "))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// StorageError represents a failure reading or writing a storage slot
type StorageError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
