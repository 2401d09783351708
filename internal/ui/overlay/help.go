package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay(styles *Styles) *HelpOverlay {
	return &HelpOverlay{
		styles:     styles,
		viewHeight: 20,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?":
			return h, closeOverlay
		case "j", "down":
			if h.scroll < h.maxScroll {
				h.scroll++
			}
		case "k", "up":
			if h.scroll > 0 {
				h.scroll--
			}
		case "g":
			h.scroll = 0
		case "G":
			h.scroll = h.maxScroll
		}
	}
	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range Keymap() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(h.styles.MenuHeader.Render(cat.Name + ":"))
		content.WriteString("\n")
		for _, binding := range cat.Bindings {
			content.WriteString("  " + h.styles.MenuKey.Render(padRight(binding.Key, 9)) + " " + h.styles.MenuItem.Render(binding.Description))
			content.WriteString("\n")
		}
	}

	lines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")
	h.maxScroll = max(0, len(lines)-h.viewHeight)
	h.scroll = min(h.scroll, h.maxScroll)

	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll > 0 {
		result += "\n\n" + h.styles.Footer.Render("[j/k to scroll, g/G to jump]")
	}
	return result
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 56, h.viewHeight + 6
}

// Keymap lists every board keybinding, grouped for display
func Keymap() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Navigation",
			Bindings: []KeyBinding{
				{Key: "h/l", Description: "Previous / next day"},
				{Key: "j/k", Description: "Next / previous task"},
				{Key: "g/G", Description: "First / last task of the day"},
				{Key: "1-7", Description: "Jump to Monday..Sunday"},
			},
		},
		{
			Name: "Tasks",
			Bindings: []KeyBinding{
				{Key: "n / a", Description: "New task on the current day"},
				{Key: "e/Enter", Description: "Edit task"},
				{Key: "i", Description: "Task details and overlaps"},
				{Key: "Space", Description: "Toggle complete"},
				{Key: "d / x", Description: "Delete task (asks first)"},
				{Key: "m", Description: "Pick up task to move"},
				{Key: "Mouse", Description: "Drag a card onto another day"},
			},
		},
		{
			Name: "Move mode",
			Bindings: []KeyBinding{
				{Key: "h/l", Description: "Choose target day"},
				{Key: "m/Enter", Description: "Drop on target day"},
				{Key: "Esc", Description: "Cancel move"},
			},
		},
		{
			Name: "View",
			Bindings: []KeyBinding{
				{Key: "/", Description: "Filter by title"},
				{Key: "f", Description: "Filter by category / day"},
				{Key: "H", Description: "Hide / show completed"},
				{Key: "c", Description: "Clear all filters"},
				{Key: "v", Description: "Board / agenda view"},
				{Key: "t", Description: "Toggle light / dark theme"},
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
			},
		},
	}
}
