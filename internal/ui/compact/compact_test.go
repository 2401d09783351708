package compact

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

func testStyles() *Styles {
	return NewStyles(styles.Macchiato)
}

func agendaTasks() []domain.Task {
	return []domain.Task{
		{ID: "wed", Title: "Lab report", Day: domain.Wednesday, StartTime: "14:00", EndTime: "16:00", Category: domain.CategoryStudy},
		{ID: "mon-2", Title: "Groceries", Day: domain.Monday, StartTime: "17:00", EndTime: "17:30", Category: domain.CategoryPersonal, IsComplete: true},
		{ID: "mon-1", Title: "Standup", Day: domain.Monday, StartTime: "09:00", EndTime: "09:15", Category: domain.CategoryWork},
	}
}

func TestNewAgendaView_Orders(t *testing.T) {
	av := NewAgendaView(agendaTasks(), testStyles(), 80, 20)

	ids := make([]domain.TaskID, 0, 3)
	for _, task := range av.Tasks() {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []domain.TaskID{"mon-1", "mon-2", "wed"}, ids)
	assert.Equal(t, 0, av.GetCursor())
}

func TestAgendaView_SelectAndStep(t *testing.T) {
	av := NewAgendaView(agendaTasks(), testStyles(), 80, 20)

	require.True(t, av.SelectID("wed"))
	assert.Equal(t, 2, av.GetCursor())
	assert.False(t, av.SelectID("missing"))

	assert.Equal(t, domain.TaskID("mon-2"), av.Step(-1).ID)
	assert.Equal(t, domain.TaskID("wed"), av.Step(5).ID, "step clamps at the end")
	assert.Equal(t, domain.TaskID("mon-1"), av.Step(-9).ID, "step clamps at the start")

	empty := NewAgendaView(nil, testStyles(), 80, 20)
	assert.Nil(t, empty.Step(1))
}

func TestAgendaView_Render(t *testing.T) {
	av := NewAgendaView(agendaTasks(), testStyles(), 80, 20)
	av.SelectID("mon-2")

	out := ansi.Strip(av.Render())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Day")
	assert.Contains(t, lines[0], "Category")
	assert.Contains(t, lines[2], "Mon")
	assert.Contains(t, lines[2], "Standup")
	assert.NotContains(t, lines[3], "Mon", "day label only on the first row of a day")
	assert.Contains(t, lines[3], "▶")
	assert.Contains(t, lines[3], "✓ Groceries")
	assert.Contains(t, lines[4], "Wed")
	assert.Contains(t, lines[4], "14:00 - 16:00")
}

func TestAgendaView_RenderEmpty(t *testing.T) {
	out := ansi.Strip(NewAgendaView(nil, testStyles(), 60, 10).Render())
	assert.Contains(t, out, "Nothing scheduled")
}

func TestAgendaView_Scroll(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 30; i++ {
		tasks = append(tasks, domain.Task{
			ID:        domain.TaskID(fmt.Sprint(i)),
			Title:     fmt.Sprintf("Task %02d", i),
			Day:       domain.Tuesday,
			StartTime: fmt.Sprintf("%02d:00", i%24),
			EndTime:   fmt.Sprintf("%02d:30", i%24),
		})
	}
	av := NewAgendaView(tasks, testStyles(), 80, 10)

	out := ansi.Strip(av.Render())
	assert.Contains(t, out, "more tasks")

	av.SetCursor(29)
	out = ansi.Strip(av.Render())
	assert.Contains(t, out, av.Tasks()[29].Title)
	assert.NotContains(t, out, "more tasks")
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 10)
}

func TestAgendaView_TruncatesTitle(t *testing.T) {
	tasks := []domain.Task{{ID: "x", Title: strings.Repeat("long ", 30), Day: domain.Monday, StartTime: "09:00", EndTime: "10:00"}}
	out := NewAgendaView(tasks, testStyles(), 50, 10).Render()

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 50)
	}
}
