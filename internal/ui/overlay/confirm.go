package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog is a Yes/No dialog. It defaults to No.
type ConfirmDialog struct {
	title    string
	message  string
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResult is the Value of the SelectionMsg a ConfirmDialog emits
type ConfirmResult struct {
	Confirmed bool
}

// NewConfirmDialog creates a confirmation dialog
func NewConfirmDialog(title, message string, styles *Styles) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		styles:  styles,
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

func (c *ConfirmDialog) choose(yes bool) tea.Cmd {
	key := "no"
	if yes {
		key = "yes"
	}
	return func() tea.Msg {
		return SelectionMsg{Key: key, Value: ConfirmResult{Confirmed: yes}}
	}
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			return c, c.choose(true)
		case "n", "N", "esc":
			return c, c.choose(false)
		case "enter":
			return c, c.choose(c.selected)
		case "left", "h":
			c.selected = true
		case "right", "l":
			c.selected = false
		case "tab", "shift+tab":
			c.selected = !c.selected
		}
	}
	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.MenuItem
	noStyle := c.styles.MenuItem
	if c.selected {
		yesStyle = c.styles.MenuItemActive
	} else {
		noStyle = c.styles.MenuItemActive
	}

	b.WriteString(yesStyle.Render("[Y] Yes"))
	b.WriteString("    ")
	b.WriteString(noStyle.Render("[N] No"))
	b.WriteString("\n\n")
	b.WriteString(c.styles.Footer.Render("← → / Tab: Switch • Enter: Confirm • Esc: Cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 56, messageLines + 6
}
