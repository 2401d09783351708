// Package overlay contains the modal dialogs drawn above the board.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a dialog choice is made
type SelectionMsg struct {
	Key   string
	Value any
}

func closeOverlay() tea.Msg {
	return CloseOverlayMsg{}
}
