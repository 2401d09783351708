package board

import "github.com/riordanpawley/weekplan/internal/domain"

// Column is one day of the week with its tasks in display order
type Column struct {
	Day   domain.Day
	Title string
	Tasks []domain.Task
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index (0 = Monday)
	Task   int // Task index within column
}

// Drag describes a task being carried to another day
type Drag struct {
	TaskID domain.TaskID
	Target int // Column index under the pointer or keyboard target
}

// Project partitions tasks into the seven day columns, each ordered by
// start time. The sort is stable so equal start times keep collection
// order. Tasks whose day is not a week day are left out.
func Project(tasks []domain.Task) []Column {
	columns := make([]Column, len(domain.Week))
	for i, day := range domain.Week {
		columns[i] = Column{
			Day:   day,
			Title: day.Short(),
			Tasks: domain.SortByStart(domain.FilterDay(tasks, day)),
		}
	}
	return columns
}
