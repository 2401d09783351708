package domain

import "sort"

// SortByStart returns a copy of tasks ordered by ascending start time.
// The sort is stable, so tasks with equal start times keep their
// collection order.
func SortByStart(tasks []Task) []Task {
	result := make([]Task, len(tasks))
	copy(result, tasks)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime < result[j].StartTime
	})

	return result
}

// FilterDay returns the tasks scheduled on day, in collection order
func FilterDay(tasks []Task, day Day) []Task {
	var result []Task
	for _, t := range tasks {
		if t.Day == day {
			result = append(result, t)
		}
	}
	return result
}

// SortByWeek orders tasks Monday first, then by start time. Ties keep
// collection order.
func SortByWeek(tasks []Task) []Task {
	result := SortByStart(tasks)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Day.Index() < result[j].Day.Index()
	})
	return result
}
