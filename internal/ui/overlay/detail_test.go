package overlay

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/weekplan/internal/domain"
)

func detailTasks() []domain.Task {
	return []domain.Task{
		{ID: "a", Title: "Lecture", Day: domain.Tuesday, StartTime: "09:00", EndTime: "10:30", Category: domain.CategoryStudy},
		{ID: "b", Title: "Coffee", Day: domain.Tuesday, StartTime: "10:00", EndTime: "10:15", Category: domain.CategoryPersonal},
		{ID: "c", Title: "Lunch", Day: domain.Tuesday, StartTime: "12:00", EndTime: "13:00", Category: domain.CategoryPersonal},
		{ID: "d", Title: "Swim", Day: domain.Friday, StartTime: "09:00", EndTime: "10:00", Category: domain.CategoryHealth},
	}
}

func TestNewDetailPanel(t *testing.T) {
	tasks := detailTasks()
	panel := NewDetailPanel(tasks[0], tasks, testStyles())

	require.Len(t, panel.overlaps, 1)
	assert.Equal(t, domain.TaskID("b"), panel.overlaps[0].ID)

	ids := make([]domain.TaskID, len(panel.sameDay))
	for i, task := range panel.sameDay {
		ids[i] = task.ID
	}
	assert.Equal(t, []domain.TaskID{"b", "c"}, ids, "same-day list excludes the task and other days")
	assert.Equal(t, "Task Details", panel.Title())
}

func TestDetailPanelView(t *testing.T) {
	tasks := detailTasks()
	view := ansi.Strip(NewDetailPanel(tasks[0], tasks, testStyles()).View())

	for _, want := range []string{"Lecture", "Tuesday", "09:00 - 10:30", "1h 30m", "study", "Open", "Overlaps 1 task(s):", "10:00 - 10:15  Coffee", "Also on Tuesday:", "Lunch"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Swim")
}

func TestDetailPanelView_Alone(t *testing.T) {
	tasks := detailTasks()
	swim := tasks[3]
	swim.IsComplete = true
	view := ansi.Strip(NewDetailPanel(swim, tasks, testStyles()).View())

	assert.Contains(t, view, "Complete")
	assert.Contains(t, view, "Nothing else scheduled")
	assert.NotContains(t, view, "Overlaps")
}

func TestDetailPanelScroll(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, domain.Task{
			ID:        domain.TaskID(fmt.Sprint(i)),
			Title:     fmt.Sprintf("Block %02d", i),
			Day:       domain.Monday,
			StartTime: fmt.Sprintf("%02d:00", i+1),
			EndTime:   fmt.Sprintf("%02d:30", i+1),
		})
	}
	panel := NewDetailPanel(tasks[0], tasks, testStyles())
	panel.View()

	panel.Update(runeKey("G"))
	assert.Equal(t, panel.maxScroll(), panel.scrollY)
	assert.Contains(t, ansi.Strip(panel.View()), "Block 19")

	panel.Update(runeKey("g"))
	assert.Equal(t, 0, panel.scrollY)
	panel.Update(runeKey("k"))
	assert.Equal(t, 0, panel.scrollY, "scroll stops at the top")
}

func TestDetailPanelClose(t *testing.T) {
	tasks := detailTasks()
	panel := NewDetailPanel(tasks[0], tasks, testStyles())

	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, runeKey("q"), runeKey("i")} {
		_, cmd := panel.Update(key)
		require.NotNil(t, cmd)
		_, ok := cmd().(CloseOverlayMsg)
		assert.True(t, ok, "key %q should close", key.String())
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"09:00", "09:45", "45m"},
		{"09:00", "11:00", "2h"},
		{"08:15", "17:30", "9h 15m"},
		{"10:00", "09:00", "-"},
		{"bad", "10:00", "-"},
	}
	for _, tt := range tests {
		if got := formatLength(tt.start, tt.end); got != tt.want {
			t.Errorf("formatLength(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}
