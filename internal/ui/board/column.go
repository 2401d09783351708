package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

type columnState struct {
	cursorTask int
	isActive   bool
	isDrop     bool
	drag       *Drag
	offset     int
}

// renderColumn renders a day header followed by the visible task cards
func renderColumn(col Column, st columnState, width, height int, s *styles.Styles) string {
	headerStyle := s.ColumnHeader
	switch {
	case st.isDrop:
		headerStyle = s.ColumnHeaderDrop
	case st.isActive:
		headerStyle = s.ColumnHeaderActive
	}

	// "─ Mon (2) ─────"
	headerText := fmt.Sprintf("─ %s (%d) ", col.Title, len(col.Tasks))
	inner := width - 2 // header padding
	if pad := inner - lipgloss.Width(headerText); pad > 0 {
		headerText += strings.Repeat("─", pad)
	}
	header := headerStyle.Render(ansi.Truncate(headerText, max(inner, 1), ""))

	if len(col.Tasks) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", s.ColumnEmpty.Render(ansi.Truncate("no tasks", max(inner, 1), "…")))
	}

	visible := visibleCards(height)
	end := min(st.offset+visible, len(col.Tasks))

	var cardStrings []string
	for i := st.offset; i < end; i++ {
		task := col.Tasks[i]
		isCursor := st.isActive && i == st.cursorTask
		isDragging := st.drag != nil && st.drag.TaskID == task.ID
		cardStrings = append(cardStrings, renderCard(task, isCursor, isDragging, width, s))
	}

	content := strings.Join(cardStrings, "\n")
	columnContent := s.Column.Width(width).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", columnContent)
}
