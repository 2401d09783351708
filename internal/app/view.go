package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/ui/board"
	"github.com/riordanpawley/weekplan/internal/ui/compact"
	"github.com/riordanpawley/weekplan/internal/ui/statusbar"
	"github.com/riordanpawley/weekplan/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	boardHeight := m.boardHeight()
	var mainView string
	if m.overlayStack.IsEmpty() {
		mainView = m.renderBoardView(boardHeight)
	} else {
		// Centered modal overlay over a cleared board area
		mainView = lipgloss.Place(
			m.width,
			boardHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.renderOverlayBox(),
		)
	}

	// Toast sits in the bottom-right corner of the board area
	if t, ok := m.notifier.Current(); ok {
		toastView := toast.New(m.styles).Render(t, m.width)
		mainView = placeBottomRight(mainView, toastView, m.width, boardHeight)
	}

	parts := []string{mainView}
	if m.editor.IsSearch() {
		parts = append(parts, m.search.View())
	}
	parts = append(parts, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderBoardView renders the week board, or the agenda list
func (m Model) renderBoardView(height int) string {
	columns := m.buildColumns()
	if m.agenda {
		return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(m.agendaView(columns, height).Render())
	}
	return board.Render(columns, m.nav.BoardCursor(columns), m.dragState(), m.styles, m.width, height)
}

// agendaView lists the visible tasks with the cursor on the selected one
func (m Model) agendaView(columns []board.Column, height int) *compact.AgendaView {
	var tasks []domain.Task
	for _, col := range columns {
		tasks = append(tasks, col.Tasks...)
	}
	av := compact.NewAgendaView(tasks, m.agendaStyles, m.width, height)
	if task := m.nav.GetCurrentTask(columns); task != nil {
		av.SelectID(task.ID)
	}
	return av
}

// stepAgenda moves the selection through the agenda, crossing days
func (m Model) stepAgenda(columns []board.Column, delta int) {
	if task := m.agendaView(columns, m.boardHeight()).Step(delta); task != nil {
		m.nav.JumpToTaskByID(columns, task.ID)
	}
}

// renderStatusBar renders the mode badge, hints and a task summary
func (m Model) renderStatusBar() string {
	tasks := m.store.Tasks()
	done := 0
	for _, t := range tasks {
		if t.IsComplete {
			done++
		}
	}
	info := fmt.Sprintf("%d/%d done", done, len(tasks))
	if m.editor.IsFilterActive() {
		info = "filtered • " + info
	}
	if c := m.editor.Carried(); c != nil {
		info = "→ " + domain.Week[c.Target].Title() + " • " + info
	}
	return statusbar.New(m.editor.GetMode(), m.width, m.styles).WithInfo(info).Render()
}

// renderOverlayBox renders the top overlay with its border and title
func (m Model) renderOverlayBox() string {
	current := m.overlayStack.Current()
	if current == nil {
		return ""
	}
	overlayView := current.View()
	if title := current.Title(); title != "" {
		titleView := m.overlayStyles.Title.Render(title)
		overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, "", overlayView)
	}

	w, h := current.Size()
	w = min(w, max(m.width-2, 1))
	h = min(h, max(m.boardHeight()-2, 1))
	return m.styles.Overlay.
		Width(w).
		Height(h).
		MaxHeight(m.boardHeight()).
		Render(overlayView)
}

// overlayBounds returns the screen rectangle of the centered overlay
func (m Model) overlayBounds() (x, y, w, h int) {
	box := m.renderOverlayBox()
	w = lipgloss.Width(box)
	h = lipgloss.Height(box)
	x = max((m.width-w)/2, 0)
	y = max((m.boardHeight()-h)/2, 0)
	return x, y, w, h
}

// placeBottomRight draws fg over the bottom-right corner of bg, which is
// width x height cells.
func placeBottomRight(bg, fg string, width, height int) string {
	fgW, fgH := lipgloss.Width(fg), lipgloss.Height(fg)
	if fgW > width || fgH > height {
		return bg
	}

	bgLines := splitLines(lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bg))
	fgLines := splitLines(fg)
	top := height - fgH
	left := width - fgW
	for i, line := range fgLines {
		row := top + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bgLines[row] = overlayLine(bgLines[row], line, left)
	}
	return joinLines(bgLines)
}

// overlayLine keeps the first left cells of bg and appends fg
func overlayLine(bg, fg string, left int) string {
	head := ansi.Truncate(bg, left, "")
	if pad := left - ansi.StringWidth(head); pad > 0 {
		head += strings.Repeat(" ", pad)
	}
	return head + fg
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
