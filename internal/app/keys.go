package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/types"
	"github.com/riordanpawley/weekplan/internal/ui/overlay"
)

// handleKey processes keyboard input based on current mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+l" {
		return m, tea.ClearScreen
	}

	switch m.editor.GetMode() {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeMove:
		return m.handleMoveMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	default:
		return m, nil
	}
}

// handleNormalMode processes keyboard input in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.buildColumns()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Vertical navigation
	case "j", "down":
		if m.agenda {
			m.stepAgenda(columns, 1)
		} else {
			m.nav.MoveDown(columns)
		}
	case "k", "up":
		if m.agenda {
			m.stepAgenda(columns, -1)
		} else {
			m.nav.MoveUp(columns)
		}
	case "g", "home":
		m.nav.GotoTop(columns)
	case "G", "end":
		m.nav.GotoBottom(columns)

	// Horizontal navigation
	case "h", "left":
		m.nav.MoveLeft(columns)
	case "l", "right":
		m.nav.MoveRight(columns)
	case "1", "2", "3", "4", "5", "6", "7":
		m.nav.GotoColumn(columns, int(msg.Runes[0]-'1'))

	// Task actions
	case "n", "a":
		return m.openCreateForm(columns)
	case "e", "enter":
		return m.openEditForm(columns)
	case "d", "x":
		return m.openDeleteConfirm(columns)
	case " ", "space":
		if task := m.nav.GetCurrentTask(columns); task != nil {
			return m.toggleComplete(task.ID)
		}
	case "m":
		if task := m.nav.GetCurrentTask(columns); task != nil {
			pos := m.nav.GetPosition(columns)
			m.editor.PickUp(task.ID, pos.Column)
		}

	// View
	case "/":
		m.editor.EnterSearch()
		m.search.SetValue(m.editor.GetFilter().SearchQuery)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case "H":
		m.editor.ToggleHideComplete()
		if m.editor.GetFilter().HideComplete {
			return m, m.notify(types.ToastInfo, "Hiding completed tasks")
		}
		return m, m.notify(types.ToastInfo, "Showing completed tasks")
	case "c":
		if m.editor.IsFilterActive() {
			m.editor.ClearFilters()
			m.search.SetValue("")
			return m, m.notify(types.ToastInfo, "Filters cleared")
		}
	case "i":
		if task := m.nav.GetCurrentTask(columns); task != nil {
			return m, m.overlayStack.Push(overlay.NewDetailPanel(*task, m.store.Tasks(), m.overlayStyles))
		}
	case "v":
		m.agenda = !m.agenda
		m.drag = nil
		if m.agenda {
			return m, m.notify(types.ToastInfo, "Agenda view")
		}
		return m, m.notify(types.ToastInfo, "Board view")
	case "f":
		return m, m.overlayStack.Push(overlay.NewFilterMenu(m.editor.GetFilter(), m.overlayStyles))
	case "t":
		return m.toggleTheme()
	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.overlayStyles))
	}

	return m, nil
}

// handleMoveMode processes keyboard input while a task is carried
func (m Model) handleMoveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.editor.EnterNormal()
	case "h", "left":
		m.editor.ShiftTarget(-1)
	case "l", "right":
		m.editor.ShiftTarget(1)
	case "1", "2", "3", "4", "5", "6", "7":
		m.editor.SetTarget(int(msg.Runes[0] - '1'))
	case "m", "enter", " ", "space":
		carry := m.editor.Drop()
		if carry == nil || carry.Target == carry.From {
			return m, nil
		}
		return m.reassign(carry.TaskID, domain.Week[carry.Target])
	}
	return m, nil
}

// handleSearchMode feeds keys to the search input, filtering as you type
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.ClearSearch()
		m.search.SetValue("")
		m.search.Blur()
		m.editor.ExitMode()
		return m, nil
	case "enter":
		m.search.Blur()
		m.editor.ExitMode()
		if q := m.editor.GetFilter().SearchQuery; q != "" {
			return m, m.notify(types.ToastInfo, fmt.Sprintf("Filtering by %q", q))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.editor.SetSearchQuery(m.search.Value())
	return m, cmd
}
