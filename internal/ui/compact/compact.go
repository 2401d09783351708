// Package compact renders the week as a single agenda table, an
// alternative to the seven-column board for narrow terminals.
package compact

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/weekplan/internal/domain"
)

// AgendaView is a scrolling table of the week's tasks in day order
type AgendaView struct {
	tasks        []domain.Task
	cursor       int
	scrollOffset int
	styles       *Styles
	width        int
	height       int
}

// NewAgendaView creates an agenda for tasks. The tasks are re-sorted
// Monday first, then by start time.
func NewAgendaView(tasks []domain.Task, styles *Styles, width, height int) *AgendaView {
	return &AgendaView{
		tasks:  domain.SortByWeek(tasks),
		styles: styles,
		width:  width,
		height: height,
	}
}

// Tasks returns the rows in display order
func (av *AgendaView) Tasks() []domain.Task {
	return av.tasks
}

// SetCursor sets the cursor position, clamped to the rows
func (av *AgendaView) SetCursor(index int) {
	av.cursor = max(0, min(index, len(av.tasks)-1))
	av.ensureCursorVisible()
}

// GetCursor returns the current cursor position
func (av *AgendaView) GetCursor() int {
	return av.cursor
}

// SelectID moves the cursor to the task with id. It reports whether the
// task is in the agenda.
func (av *AgendaView) SelectID(id domain.TaskID) bool {
	for i, t := range av.tasks {
		if t.ID == id {
			av.SetCursor(i)
			return true
		}
	}
	return false
}

// Step returns the task delta rows away from the cursor, clamped to the
// ends of the agenda
func (av *AgendaView) Step(delta int) *domain.Task {
	if len(av.tasks) == 0 {
		return nil
	}
	av.SetCursor(av.cursor + delta)
	return &av.tasks[av.cursor]
}

// Render renders the full agenda
func (av *AgendaView) Render() string {
	if len(av.tasks) == 0 {
		return av.renderEmptyState()
	}

	var b strings.Builder
	b.WriteString(av.renderHeader())
	b.WriteString("\n")
	b.WriteString(av.styles.Separator.Render(strings.Repeat("─", av.width)))
	b.WriteString("\n")

	visibleRows := av.visibleRows()
	endIdx := min(av.scrollOffset+visibleRows, len(av.tasks))

	for i := av.scrollOffset; i < endIdx; i++ {
		b.WriteString(av.renderRow(i, av.tasks[i]))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(av.tasks) {
		b.WriteString("\n")
		b.WriteString(av.styles.Separator.Render(fmt.Sprintf(" ↓ %d more tasks ↓ ", len(av.tasks)-endIdx)))
	}

	return b.String()
}

func (av *AgendaView) renderEmptyState() string {
	return lipgloss.NewStyle().
		Foreground(av.styles.Row.GetForeground()).
		Italic(true).
		Align(lipgloss.Center).
		Width(av.width).
		Render("Nothing scheduled\n\nPress 'n' to add a task")
}

func (av *AgendaView) renderHeader() string {
	w := av.columnWidths()
	cells := []string{
		av.styles.HeaderCell.Width(w.cursor).Render(""),
		av.styles.HeaderCell.Width(w.day).Render("Day"),
		av.styles.HeaderCell.Width(w.time).Render("Time"),
		av.styles.HeaderCell.Width(w.category).Render("Category"),
		av.styles.HeaderCell.Width(w.title).Render("Title"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (av *AgendaView) renderRow(index int, task domain.Task) string {
	w := av.columnWidths()
	isActive := index == av.cursor

	rowStyle := av.styles.Row
	if task.IsComplete {
		rowStyle = av.styles.RowComplete
	}
	if isActive {
		rowStyle = av.styles.RowActive
	}

	// Day label only on the first row of each day
	day := ""
	if index == 0 || av.tasks[index-1].Day != task.Day {
		day = task.Day.Short()
	}

	indicator := " "
	if isActive {
		indicator = av.styles.Cursor.Render("▶")
	}
	check := "  "
	if task.IsComplete {
		check = "✓ "
	}

	cells := []string{
		lipgloss.NewStyle().Width(w.cursor).Render(indicator),
		av.styles.DayCell.Width(w.day).Render(day),
		rowStyle.Width(w.time).Render(task.TimeRange()),
		av.styles.Category(task.Category).Width(w.category).Render(task.Category.String()),
		rowStyle.Width(w.title).Render(ansi.Truncate(check+task.Title, w.title, "…")),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

type columnWidths struct {
	cursor   int
	day      int
	time     int
	category int
	title    int
}

func (av *AgendaView) columnWidths() columnWidths {
	const (
		cursorWidth   = 2
		dayWidth      = 5
		timeWidth     = 15
		categoryWidth = 10
	)
	fixed := cursorWidth + dayWidth + timeWidth + categoryWidth
	return columnWidths{
		cursor:   cursorWidth,
		day:      dayWidth,
		time:     timeWidth,
		category: categoryWidth,
		title:    max(10, av.width-fixed),
	}
}

// visibleRows is the body height below the header and separator
func (av *AgendaView) visibleRows() int {
	return max(av.height-3, 1)
}

func (av *AgendaView) ensureCursorVisible() {
	visibleRows := av.visibleRows()

	if av.cursor < av.scrollOffset {
		av.scrollOffset = av.cursor
	}
	if av.cursor >= av.scrollOffset+visibleRows {
		av.scrollOffset = av.cursor - visibleRows + 1
	}

	maxOffset := max(0, len(av.tasks)-visibleRows)
	av.scrollOffset = max(0, min(av.scrollOffset, maxOffset))
}
