package domain

import "strings"

// Filter narrows the visible tasks without touching the collection
type Filter struct {
	Days         map[Day]bool
	Categories   map[Category]bool
	HideComplete bool
	SearchQuery  string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Days:       make(map[Day]bool),
		Categories: make(map[Category]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Days) > 0 ||
		len(f.Categories) > 0 ||
		f.HideComplete ||
		f.SearchQuery != ""
}

// Apply filters a list of tasks
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters.
// AND between filter kinds, OR within a kind.
func (f *Filter) Matches(t Task) bool {
	if len(f.Days) > 0 && !f.Days[t.Day] {
		return false
	}
	if len(f.Categories) > 0 && !f.Categories[t.Category] {
		return false
	}
	if f.HideComplete && t.IsComplete {
		return false
	}
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(t.Title), q) {
			return false
		}
	}
	return true
}

// ToggleCategory adds or removes a category from the filter
func (f *Filter) ToggleCategory(c Category) {
	if f.Categories == nil {
		f.Categories = make(map[Category]bool)
	}
	if f.Categories[c] {
		delete(f.Categories, c)
	} else {
		f.Categories[c] = true
	}
}

// Clear resets every filter
func (f *Filter) Clear() {
	f.Days = make(map[Day]bool)
	f.Categories = make(map[Category]bool)
	f.HideComplete = false
	f.SearchQuery = ""
}
