package domain

// HasConflict reports whether candidate overlaps any task in tasks that is
// scheduled on the same day, ignoring the task whose id equals excludeID.
// Intervals are half-open, so touching tasks (09:00-10:00, 10:00-11:00)
// do not conflict.
func HasConflict(candidate Task, tasks []Task, excludeID TaskID) bool {
	for _, existing := range tasks {
		if existing.ID == excludeID && excludeID != "" {
			continue
		}
		if candidate.Overlaps(existing) {
			return true
		}
	}
	return false
}

// Conflicts returns every task that candidate overlaps, in collection order
func Conflicts(candidate Task, tasks []Task, excludeID TaskID) []Task {
	var out []Task
	for _, existing := range tasks {
		if existing.ID == excludeID && excludeID != "" {
			continue
		}
		if candidate.Overlaps(existing) {
			out = append(out, existing)
		}
	}
	return out
}
