// Package editor provides board mode and view state management
package editor

import (
	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/types"
)

// Re-export Mode type for convenience
type Mode = types.Mode

// Mode constants
const (
	ModeNormal = types.ModeNormal
	ModeMove   = types.ModeMove
	ModeSearch = types.ModeSearch
)

// Carry is a task picked up for a keyboard move
type Carry struct {
	TaskID domain.TaskID
	From   int // source column
	Target int // column the task would land in
}

// Service manages view state (mode, filter, carried task)
type Service struct {
	mode   Mode
	filter *domain.Filter
	carry  *Carry
}

// NewService creates a new editor service with defaults
func NewService() *Service {
	return &Service{
		mode:   ModeNormal,
		filter: domain.NewFilter(),
	}
}

// GetMode returns the current mode
func (s *Service) GetMode() Mode {
	return s.mode
}

// EnterNormal switches to normal mode, dropping any carried task
func (s *Service) EnterNormal() {
	s.mode = ModeNormal
	s.carry = nil
}

// EnterSearch switches to search mode
func (s *Service) EnterSearch() {
	s.mode = ModeSearch
}

// ExitMode returns to normal mode if not already normal
func (s *Service) ExitMode() bool {
	if s.mode != ModeNormal {
		s.EnterNormal()
		return true
	}
	return false
}

// IsNormal returns true if in normal mode
func (s *Service) IsNormal() bool {
	return s.mode == ModeNormal
}

// IsMove returns true while a task is being carried
func (s *Service) IsMove() bool {
	return s.mode == ModeMove
}

// IsSearch returns true if in search mode
func (s *Service) IsSearch() bool {
	return s.mode == ModeSearch
}

// Move state

// PickUp starts carrying a task from column
func (s *Service) PickUp(id domain.TaskID, column int) {
	s.mode = ModeMove
	s.carry = &Carry{TaskID: id, From: column, Target: column}
}

// Carried returns the carried task, or nil
func (s *Service) Carried() *Carry {
	return s.carry
}

// ShiftTarget moves the drop target by delta, clamped to the week
func (s *Service) ShiftTarget(delta int) {
	if s.carry == nil {
		return
	}
	s.carry.Target = min(max(s.carry.Target+delta, 0), len(domain.Week)-1)
}

// SetTarget points the drop target at column
func (s *Service) SetTarget(column int) {
	if s.carry == nil {
		return
	}
	s.carry.Target = min(max(column, 0), len(domain.Week)-1)
}

// Drop ends the move and returns what was carried
func (s *Service) Drop() *Carry {
	c := s.carry
	s.EnterNormal()
	return c
}

// Filter management

// GetFilter returns the current filter
func (s *Service) GetFilter() *domain.Filter {
	return s.filter
}

// SetSearchQuery updates the search query in the filter
func (s *Service) SetSearchQuery(query string) {
	s.filter.SearchQuery = query
}

// ClearSearch clears the search query
func (s *Service) ClearSearch() {
	s.filter.SearchQuery = ""
}

// ToggleCategoryFilter toggles a category in the filter
func (s *Service) ToggleCategoryFilter(c domain.Category) {
	s.filter.ToggleCategory(c)
}

// ToggleHideComplete toggles hiding completed tasks
func (s *Service) ToggleHideComplete() {
	s.filter.HideComplete = !s.filter.HideComplete
}

// ClearFilters clears all filters
func (s *Service) ClearFilters() {
	s.filter.Clear()
}

// IsFilterActive returns true if any filter is active
func (s *Service) IsFilterActive() bool {
	return s.filter.IsActive()
}

// ApplyFilter filters a list of tasks
func (s *Service) ApplyFilter(tasks []domain.Task) []domain.Task {
	return s.filter.Apply(tasks)
}
