package overlay

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/weekplan/internal/domain"
)

// DetailPanel displays one task with the tasks it overlaps and the rest
// of its day
type DetailPanel struct {
	task     domain.Task
	overlaps []domain.Task
	sameDay  []domain.Task
	scrollY  int
	lines    int
	styles   *Styles
}

const detailViewHeight = 12

// NewDetailPanel creates a detail panel for task. all is the full
// collection; the panel picks out the task's day itself.
func NewDetailPanel(task domain.Task, all []domain.Task, styles *Styles) *DetailPanel {
	var sameDay []domain.Task
	for _, t := range domain.SortByStart(domain.FilterDay(all, task.Day)) {
		if t.ID != task.ID {
			sameDay = append(sameDay, t)
		}
	}
	return &DetailPanel{
		task:     task,
		overlaps: domain.Conflicts(task, all, task.ID),
		sameDay:  sameDay,
		styles:   styles,
	}
}

// Init initializes the detail panel
func (d *DetailPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *DetailPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "i":
			return d, closeOverlay
		case "j", "down":
			if d.scrollY < d.maxScroll() {
				d.scrollY++
			}
		case "k", "up":
			if d.scrollY > 0 {
				d.scrollY--
			}
		case "g":
			d.scrollY = 0
		case "G":
			d.scrollY = d.maxScroll()
		}
	}
	return d, nil
}

// View renders the detail panel
func (d *DetailPanel) View() string {
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(d.styles.Label.Render(label))
		b.WriteString("  ")
		b.WriteString(d.styles.MenuItem.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(d.styles.MenuHeader.Render(d.task.Title))
	b.WriteString("\n\n")
	field("Day:", d.task.Day.Title())
	field("Time:", d.task.TimeRange())
	field("Length:", formatLength(d.task.StartTime, d.task.EndTime))
	field("Category:", d.task.Category.String())
	status := "Open"
	if d.task.IsComplete {
		status = "Complete"
	}
	field("Status:", status)
	field("ID:", d.task.ID.String())

	var list []string
	if len(d.overlaps) > 0 {
		list = append(list, d.styles.Error.Render(fmt.Sprintf("Overlaps %d task(s):", len(d.overlaps))))
		for _, t := range d.overlaps {
			list = append(list, "  "+d.styles.Error.Render(t.TimeRange()+"  "+t.Title))
		}
	}
	list = append(list, d.styles.MenuHeader.Render("Also on "+d.task.Day.Title()+":"))
	if len(d.sameDay) == 0 {
		list = append(list, "  "+d.styles.Footer.Render("Nothing else scheduled"))
	}
	for _, t := range d.sameDay {
		list = append(list, "  "+d.styles.MenuItem.Render(t.TimeRange()+"  "+t.Title))
	}
	d.lines = len(list)
	d.scrollY = min(d.scrollY, d.maxScroll())

	b.WriteString("\n")
	end := min(d.scrollY+detailViewHeight, len(list))
	b.WriteString(strings.Join(list[d.scrollY:end], "\n"))

	if d.maxScroll() > 0 {
		b.WriteString("\n\n")
		b.WriteString(d.styles.Footer.Render(fmt.Sprintf("[j/k to scroll, g/G to jump] (line %d/%d)", d.scrollY+1, d.lines)))
	}
	return b.String()
}

// Title returns the overlay title
func (d *DetailPanel) Title() string {
	return "Task Details"
}

// Size returns the overlay dimensions
func (d *DetailPanel) Size() (width, height int) {
	return 60, detailViewHeight + 16
}

func (d *DetailPanel) maxScroll() int {
	return max(0, d.lines-detailViewHeight)
}

// formatLength renders the span between two HH:MM clocks
func formatLength(start, end string) string {
	s, err1 := time.Parse("15:04", start)
	e, err2 := time.Parse("15:04", end)
	if err1 != nil || err2 != nil || !e.After(s) {
		return "-"
	}
	dur := e.Sub(s)
	hours := int(dur.Hours())
	minutes := int(dur.Minutes()) % 60
	if hours > 0 && minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	} else if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}
