// Package app contains the main application model and TEA implementation.
package app

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/services/editor"
	"github.com/riordanpawley/weekplan/internal/services/navigation"
	"github.com/riordanpawley/weekplan/internal/services/planner"
	"github.com/riordanpawley/weekplan/internal/types"
	"github.com/riordanpawley/weekplan/internal/ui/board"
	"github.com/riordanpawley/weekplan/internal/ui/compact"
	"github.com/riordanpawley/weekplan/internal/ui/overlay"
	"github.com/riordanpawley/weekplan/internal/ui/styles"
	"github.com/riordanpawley/weekplan/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeMove   = types.ModeMove
	ModeSearch = types.ModeSearch
)

// ThemeSaver persists the theme preference
type ThemeSaver interface {
	Save(theme types.Theme) error
}

// Options configures a Model
type Options struct {
	Store          *planner.Service
	Themes         ThemeSaver
	Theme          types.Theme
	NotifyDuration time.Duration
	Mouse          bool
	Logger         *log.Logger
}

// mouseDrag is a pointer drag in progress
type mouseDrag struct {
	taskID domain.TaskID
	from   int
	target int
	moved  bool // pointer left the source column at least once
	wasSel bool // the card was already selected on press
}

// Model is the main application state
type Model struct {
	// Core data
	store *planner.Service

	// Navigation (cursor follows task ids)
	nav *navigation.Service

	// Editor state (mode, filter, carried task)
	editor *editor.Service

	// UI state
	overlayStack  *overlay.Stack
	pendingDelete domain.TaskID
	search        textinput.Model
	drag          *mouseDrag
	agenda        bool // single-list view instead of the board

	// Notifications
	notifier *toast.Notifier

	// Terminal size
	width  int
	height int

	// Theme and styles
	theme         types.Theme
	themes        ThemeSaver
	styles        *styles.Styles
	overlayStyles *overlay.Styles
	agendaStyles  *compact.Styles

	mouse  bool
	logger *log.Logger
}

// New creates a new application model
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	theme := opts.Theme
	if !theme.Valid() {
		theme = types.ThemeDark
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "filter by title"
	search.CharLimit = 80

	m := Model{
		store:        opts.Store,
		nav:          navigation.NewService(),
		editor:       editor.NewService(),
		overlayStack: overlay.NewStack(),
		search:       search,
		notifier:     toast.NewNotifier(opts.NotifyDuration),
		themes:       opts.Themes,
		mouse:        opts.Mouse,
		logger:       logger,
	}
	m.applyTheme(theme)
	return m
}

// applyTheme rebuilds the styles for theme
func (m *Model) applyTheme(theme types.Theme) {
	m.theme = theme
	m.styles = styles.New(theme)
	m.overlayStyles = overlay.New(m.styles.Palette)
	m.agendaStyles = compact.NewStyles(m.styles.Palette)
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		return m.handleMouse(msg)

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		m.pendingDelete = ""
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.TaskSubmittedMsg:
		return m.handleSubmit(msg)

	case toast.DismissMsg:
		m.notifier.Dismiss(msg.Seq)
		return m, nil
	}

	// Anything else (cursor blink and friends) goes to the open overlay
	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	if m.editor.IsSearch() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// buildColumns projects the filtered collection onto the week
func (m Model) buildColumns() []board.Column {
	return board.Project(m.editor.ApplyFilter(m.store.Tasks()))
}

// boardHeight is the number of rows available to the board
func (m Model) boardHeight() int {
	h := m.height - 1 // status bar
	if m.editor.IsSearch() {
		h--
	}
	return max(h, 0)
}

// notify shows a toast and returns its dismissal command
func (m Model) notify(level types.ToastLevel, message string) tea.Cmd {
	return m.notifier.Show(level, message)
}
