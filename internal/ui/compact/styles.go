package compact

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

// Styles holds the styling for the agenda view
type Styles struct {
	HeaderCell lipgloss.Style
	Separator  lipgloss.Style

	Row         lipgloss.Style
	RowActive   lipgloss.Style
	RowComplete lipgloss.Style

	DayCell lipgloss.Style
	Cursor  lipgloss.Style

	palette styles.Palette
}

// NewStyles creates agenda styles from a palette
func NewStyles(p styles.Palette) *Styles {
	return &Styles{
		HeaderCell: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(p.Surface1),

		Row: lipgloss.NewStyle().
			Foreground(p.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		RowComplete: lipgloss.NewStyle().
			Foreground(p.Overlay0).
			Strikethrough(true),

		DayCell: lipgloss.NewStyle().
			Foreground(p.Lavender).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(p.Yellow),

		palette: p,
	}
}

// Category returns the cell style for a category label
func (s *Styles) Category(c domain.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.CategoryColor(c))
}
