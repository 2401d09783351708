package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/weekplan/internal/types"
)

// DismissMsg asks the notifier to hide the toast with Seq
type DismissMsg struct {
	Seq uint64
}

// Notifier holds at most one visible toast. Showing a new toast replaces
// the current one, and the replaced toast's pending dismissal becomes a
// no-op because its sequence number no longer matches.
type Notifier struct {
	current  *types.Toast
	seq      uint64
	duration time.Duration
}

// NewNotifier creates a notifier whose toasts last d
func NewNotifier(d time.Duration) *Notifier {
	if d <= 0 {
		d = types.DefaultToastDuration
	}
	return &Notifier{duration: d}
}

// Duration returns how long each toast is visible
func (n *Notifier) Duration() time.Duration {
	return n.duration
}

// Show replaces the visible toast and returns the command that will
// dismiss it.
func (n *Notifier) Show(level types.ToastLevel, message string) tea.Cmd {
	n.seq++
	seq := n.seq
	n.current = &types.Toast{Level: level, Message: message, Seq: seq}

	return tea.Tick(n.duration, func(time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}

// Dismiss hides the toast if seq is still the visible one
func (n *Notifier) Dismiss(seq uint64) bool {
	if n.current == nil || n.current.Seq != seq {
		return false
	}
	n.current = nil
	return true
}

// Current returns the visible toast
func (n *Notifier) Current() (types.Toast, bool) {
	if n.current == nil {
		return types.Toast{}, false
	}
	return *n.current, true
}
