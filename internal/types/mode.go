// Package types contains shared types used across the application.
package types

// Mode represents the current board interaction mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // carrying a task between day columns
	ModeSearch      // typing a title filter
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeMove:
		return "MOVE"
	case ModeSearch:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}
