package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

// renderCard renders a task card exactly cardHeight lines tall. width is
// the full column width including the card border.
func renderCard(task domain.Task, isCursor, isDragging bool, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isDragging {
		cardStyle = s.CardDragging
	} else if isCursor {
		cardStyle = s.CardActive
	}

	// Width excludes the border, inner excludes padding too
	cardStyle = cardStyle.Width(width - 2)
	inner := max(width-4, 1)

	marker := ""
	switch {
	case isCursor:
		marker = "▶"
	case task.IsComplete:
		marker = "✓"
	}

	titleStyle := s.TaskTitle
	if task.IsComplete {
		titleStyle = s.TaskDone
	}
	title := ansi.Truncate(task.Title, max(inner-lipgloss.Width(marker), 1), "…")
	titleLine := titleStyle.Render(title)
	if marker != "" {
		markStyle := s.CheckMark
		if isCursor {
			markStyle = s.StatusHint
		}
		titleLine = markStyle.Render(marker) + titleLine
	}

	timeText := task.TimeRange()
	if lipgloss.Width(timeText) > inner {
		timeText = task.StartTime + "-" + task.EndTime
	}
	timeLine := s.TaskTime.Render(ansi.Truncate(timeText, inner, "…"))

	label := task.Category.String()
	if task.IsComplete && inner >= lipgloss.Width(label)+4 {
		label += " ✓"
	}
	badge := s.CategoryBadge(task.Category).Render(ansi.Truncate(label, max(inner-2, 1), "…"))

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, timeLine, badge)

	return cardStyle.Render(content)
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor, isDragging bool, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, isDragging, width, s)
}
