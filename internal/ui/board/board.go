package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

// Render renders the week as seven day columns side by side. drag may be
// nil when nothing is being moved.
func Render(
	columns []Column,
	cursor Cursor,
	drag *Drag,
	s *styles.Styles,
	width int,
	height int,
) string {
	if len(columns) == 0 {
		return ""
	}

	cw := columnWidth(len(columns), width)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := -1
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(col, columnState{
			cursorTask: cursorTask,
			isActive:   isActive,
			isDrop:     drag != nil && drag.Target == i,
			drag:       drag,
			offset:     scrollOffset(len(col.Tasks), cursor.Task, isActive, height),
		}, cw, height, s)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(cw).Height(height).MaxHeight(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
