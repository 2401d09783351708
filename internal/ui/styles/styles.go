package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/types"
)

// Styles holds all the UI styles
type Styles struct {
	Theme   types.Theme
	Palette Palette

	// Board
	Board              lipgloss.Style
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style
	ColumnHeaderDrop   lipgloss.Style
	ColumnEmpty        lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardActive   lipgloss.Style
	CardDragging lipgloss.Style
	TaskTitle    lipgloss.Style
	TaskDone     lipgloss.Style
	TaskTime     lipgloss.Style
	CheckMark    lipgloss.Style

	// Badges
	CategoryBadge func(c domain.Category) lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates the styles for theme. Dark uses Catppuccin Macchiato and
// light uses Catppuccin Latte.
func New(theme types.Theme) *Styles {
	if !theme.Valid() {
		theme = types.ThemeDark
	}
	p := PaletteFor(theme)

	toast := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Foreground(c).
			Padding(0, 1)
	}
	card := func(border lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1)
	}
	header := func(fg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(fg).
			Bold(true).
			Padding(0, 1)
	}

	return &Styles{
		Theme:   theme,
		Palette: p,

		Board: lipgloss.NewStyle().
			Background(p.Base),

		Column: lipgloss.NewStyle(),

		ColumnHeader:       header(p.Subtext0),
		ColumnHeaderActive: header(p.Blue),
		ColumnHeaderDrop: header(p.Base).
			Background(p.Green),

		ColumnEmpty: lipgloss.NewStyle().
			Foreground(p.Overlay0).
			Italic(true).
			Padding(0, 1),

		Card:         card(p.Surface1),
		CardActive:   card(p.Lavender),
		CardDragging: card(p.Yellow).BorderStyle(lipgloss.DoubleBorder()),

		TaskTitle: lipgloss.NewStyle().
			Foreground(p.Text),

		TaskDone: lipgloss.NewStyle().
			Foreground(p.Overlay1).
			Strikethrough(true),

		TaskTime: lipgloss.NewStyle().
			Foreground(p.Subtext0),

		CheckMark: lipgloss.NewStyle().
			Foreground(p.Green).
			Bold(true),

		CategoryBadge: func(c domain.Category) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(p.Base).
				Background(p.CategoryColor(c)).
				Padding(0, 1)
		},

		StatusBar: lipgloss.NewStyle().
			Background(p.Surface0).
			Foreground(p.Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(p.Blue).
			Foreground(p.Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(p.Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(p.Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface2).
			Background(p.Base).
			Padding(1, 2),

		ToastInfo:    toast(p.Blue),
		ToastSuccess: toast(p.Green),
		ToastWarning: toast(p.Yellow),
		ToastError:   toast(p.Red),
	}
}

// ModeStyle returns the status bar badge style for a mode
func (s *Styles) ModeStyle(mode types.Mode) lipgloss.Style {
	switch mode {
	case types.ModeMove:
		return s.StatusMode.Background(s.Palette.Yellow)
	case types.ModeSearch:
		return s.StatusMode.Background(s.Palette.Mauve)
	default:
		return s.StatusMode
	}
}
