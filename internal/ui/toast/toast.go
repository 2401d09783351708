// Package toast renders the transient notification and tracks its
// lifetime.
package toast

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/weekplan/internal/types"
	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render renders a single toast, at most 40 cells wide
func (r *ToastRenderer) Render(t types.Toast, width int) string {
	if t.Message == "" {
		return ""
	}

	toastWidth := min(max(width/3, 20), 40)
	return r.styleForLevel(t.Level).Width(toastWidth).Render(t.Message)
}

// styleForLevel returns the appropriate style for a toast level
func (r *ToastRenderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
