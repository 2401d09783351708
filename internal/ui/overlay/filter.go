package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/weekplan/internal/domain"
)

// filterMode represents the current selection mode
type filterMode string

const (
	filterModeNormal   filterMode = "normal"
	filterModeCategory filterMode = "category"
	filterModeDay      filterMode = "day"
)

// categoryKeys maps the key pressed in category mode to its category
var categoryKeys = []struct {
	key      string
	category domain.Category
}{
	{"s", domain.CategoryStudy},
	{"w", domain.CategoryWork},
	{"p", domain.CategoryPersonal},
	{"h", domain.CategoryHealth},
	{"l", domain.CategoryLeisure},
	{"o", domain.CategoryOther},
}

// FilterMenu is a menu overlay that edits the board filter in place
type FilterMenu struct {
	filter *domain.Filter
	styles *Styles
	mode   filterMode
}

// NewFilterMenu creates a new filter menu for the given filter
func NewFilterMenu(filter *domain.Filter, styles *Styles) *FilterMenu {
	return &FilterMenu{
		filter: filter,
		styles: styles,
		mode:   filterModeNormal,
	}
}

// Init initializes the menu
func (m *FilterMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *FilterMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.mode {
		case filterModeNormal:
			return m.handleNormalMode(msg)
		case filterModeCategory:
			return m.handleCategoryMode(msg)
		case filterModeDay:
			return m.handleDayMode(msg)
		}
	}
	return m, nil
}

// handleNormalMode handles keys in normal mode
func (m *FilterMenu) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter", "f":
		return m, closeOverlay
	case "c":
		m.mode = filterModeCategory
	case "d":
		m.mode = filterModeDay
	case "x":
		m.filter.HideComplete = !m.filter.HideComplete
	case "r":
		m.filter.Clear()
	}
	return m, nil
}

// handleCategoryMode toggles one category and returns to normal mode
func (m *FilterMenu) handleCategoryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = filterModeNormal
		return m, nil
	}
	for _, ck := range categoryKeys {
		if msg.String() == ck.key {
			m.filter.ToggleCategory(ck.category)
			m.mode = filterModeNormal
			break
		}
	}
	return m, nil
}

// handleDayMode toggles one day (1 = Monday) and returns to normal mode
func (m *FilterMenu) handleDayMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		m.mode = filterModeNormal
		return m, nil
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '7' {
		day := domain.Week[key[0]-'1']
		if m.filter.Days == nil {
			m.filter.Days = make(map[domain.Day]bool)
		}
		if m.filter.Days[day] {
			delete(m.filter.Days, day)
		} else {
			m.filter.Days[day] = true
		}
		m.mode = filterModeNormal
	}
	return m, nil
}

// View renders the menu
func (m *FilterMenu) View() string {
	var b strings.Builder

	categories := make([]filterOption, len(categoryKeys))
	for i, ck := range categoryKeys {
		categories[i] = filterOption{key: ck.key, label: ck.category.String(), active: m.filter.Categories[ck.category]}
	}
	b.WriteString(m.renderFilterLine("Category", "c", categories, m.mode == filterModeCategory))

	days := make([]filterOption, len(domain.Week))
	for i, day := range domain.Week {
		days[i] = filterOption{key: fmt.Sprint(i + 1), label: day.Short(), active: m.filter.Days[day]}
	}
	b.WriteString(m.renderFilterLine("Day", "d", days, m.mode == filterModeDay))

	b.WriteString(m.styles.Separator.Render("───────────────────────────────────────"))
	b.WriteString("\n")

	checkbox := "[ ]"
	if m.filter.HideComplete {
		checkbox = "[●]"
	}
	b.WriteString(m.styles.MenuKey.Render("[x]") + " " + m.styles.MenuItem.Render(checkbox+" Hide completed"))
	b.WriteString("\n")

	if m.filter.SearchQuery != "" {
		b.WriteString(m.styles.MenuItem.Render(fmt.Sprintf("    Title contains %q", m.filter.SearchQuery)))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Separator.Render("───────────────────────────────────────"))
	b.WriteString("\n")

	b.WriteString(m.styles.MenuKey.Render("[r]") + " " + m.styles.MenuItem.Render("Reset all filters"))
	b.WriteString("\n")

	if m.mode != filterModeNormal {
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("Press key to toggle filter, Esc to cancel"))
	}

	return b.String()
}

// filterOption represents a single filter option
type filterOption struct {
	key    string
	label  string
	active bool
}

// renderFilterLine renders a filter category line
func (m *FilterMenu) renderFilterLine(name string, nameKey string, options []filterOption, selecting bool) string {
	var b strings.Builder

	keyStyle := m.styles.MenuKey
	if selecting {
		keyStyle = m.styles.MenuItemActive
	}
	b.WriteString(keyStyle.Render(fmt.Sprintf("[%s]", nameKey)))
	b.WriteString(" ")
	b.WriteString(m.styles.MenuItem.Render(name + ":"))
	b.WriteString("\n    ")

	for i, opt := range options {
		if i > 0 {
			b.WriteString(" ")
		}

		indicator := " "
		style := m.styles.MenuItem
		if opt.active {
			indicator = "●"
			style = m.styles.MenuItemActive
		}
		b.WriteString(style.Render(fmt.Sprintf("[%s%s=%s]", indicator, opt.key, opt.label)))
	}

	b.WriteString("\n")
	return b.String()
}

// Title returns the overlay title
func (m *FilterMenu) Title() string {
	return "Filter Tasks"
}

// Size returns the overlay dimensions
func (m *FilterMenu) Size() (width, height int) {
	return 80, 14
}
