package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Title is the overlay title style
	Title lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// MenuHeader is the style for section headers
	MenuHeader lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// Label and LabelFocused style form field labels
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	// Error is the inline form error style
	Error lipgloss.Style
}

// New creates overlay styles from a palette
func New(p styles.Palette) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(p.Yellow).
			Bold(true),

		MenuHeader: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(p.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(p.Subtext0),

		Label: lipgloss.NewStyle().
			Foreground(p.Teal).
			Width(10).
			Align(lipgloss.Right),

		LabelFocused: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true).
			Width(10).
			Align(lipgloss.Right),

		Error: lipgloss.NewStyle().
			Foreground(p.Red),
	}
}
