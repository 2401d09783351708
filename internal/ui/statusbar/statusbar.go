package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/weekplan/internal/types"
	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	info   string
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithInfo sets the right-aligned summary text
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.ModeStyle(sb.mode).Render(" " + sb.mode.String() + " ")

	inner := max(sb.width-2, 0) // status bar padding takes 2 cells
	info := ""
	if sb.info != "" {
		info = sb.styles.StatusInfo.Render(sb.info)
	}

	content := modeBadge
	if hints := GetHints(sb.mode); hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		// Hints give way to the info text
		room := inner - lipgloss.Width(modeBadge) - lipgloss.Width(separator) - lipgloss.Width(info) - 1
		if room > 0 {
			hintsView := sb.styles.StatusHint.Render(ansi.Truncate(hints, room, "…"))
			content = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, hintsView)
		}
	}

	if info != "" {
		if gap := inner - lipgloss.Width(content) - lipgloss.Width(info); gap > 0 {
			content = lipgloss.JoinHorizontal(lipgloss.Left, content, lipgloss.NewStyle().Width(gap).Render(""), info)
		}
	}

	// keep to a single line
	content = ansi.Truncate(content, inner, "…")
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
