package planner

import (
	"fmt"

	"github.com/riordanpawley/weekplan/internal/domain"
)

// Create validates the draft, rejects it if it overlaps a task on the
// same day, and appends it with a fresh id.
func (s *Service) Create(draft domain.Draft) (Event, error) {
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return Event{}, err
	}

	task := draft.Task(s.uniqueID())
	if with := domain.Conflicts(task, s.tasks, ""); len(with) > 0 {
		return Event{}, &domain.ConflictError{Task: task, With: with}
	}

	next := append(s.clone(), task)
	if err := s.commit(next); err != nil {
		return Event{}, err
	}

	s.logger.Info("task created", "id", task.ID, "day", task.Day, "start", task.StartTime, "end", task.EndTime)
	return Event{Kind: EventCreated, Task: task}, nil
}

// Update merges patch into the task with id. A missing id is a no-op.
func (s *Service) Update(id domain.TaskID, patch domain.Patch) (Event, error) {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("update ignored, no such task", "id", id)
		return Event{}, nil
	}

	task := patch.Apply(s.tasks[i])
	if err := task.Validate(); err != nil {
		return Event{}, err
	}
	if with := domain.Conflicts(task, s.tasks, id); len(with) > 0 {
		return Event{}, &domain.ConflictError{Task: task, With: with}
	}

	next := s.clone()
	next[i] = task
	if err := s.commit(next); err != nil {
		return Event{}, err
	}

	s.logger.Info("task updated", "id", id)
	return Event{Kind: EventUpdated, Task: task}, nil
}

// Delete removes the task with id. A missing id is a no-op.
func (s *Service) Delete(id domain.TaskID) (Event, error) {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("delete ignored, no such task", "id", id)
		return Event{}, nil
	}

	removed := s.tasks[i]
	next := make([]domain.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)
	if err := s.commit(next); err != nil {
		return Event{}, err
	}

	s.logger.Info("task deleted", "id", id)
	return Event{Kind: EventDeleted, Task: removed}, nil
}

// ToggleComplete flips the completion flag. Overlaps are not checked.
func (s *Service) ToggleComplete(id domain.TaskID) (Event, error) {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("toggle ignored, no such task", "id", id)
		return Event{}, nil
	}

	next := s.clone()
	next[i].IsComplete = !next[i].IsComplete
	if err := s.commit(next); err != nil {
		return Event{}, err
	}

	s.logger.Info("task toggled", "id", id, "complete", next[i].IsComplete)
	return Event{Kind: EventToggled, Task: next[i]}, nil
}

// ReassignDay moves the task with id to day, keeping its times.
//
// In lenient mode the move always succeeds and the returned event lists
// any tasks it now overlaps. In strict mode an overlap rejects the move
// with a *domain.ConflictError. A missing id is a no-op.
func (s *Service) ReassignDay(id domain.TaskID, day domain.Day) (Event, error) {
	if !day.Valid() {
		return Event{}, fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
	}

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("reassign ignored, no such task", "id", id)
		return Event{}, nil
	}

	task := s.tasks[i]
	task.Day = day
	overlaps := domain.Conflicts(task, s.tasks, id)
	if len(overlaps) > 0 && s.strictReassign {
		return Event{}, &domain.ConflictError{Task: task, With: overlaps}
	}

	next := s.clone()
	next[i] = task
	if err := s.commit(next); err != nil {
		return Event{}, err
	}

	if len(overlaps) > 0 {
		s.logger.Warn("task reassigned over existing tasks", "id", id, "day", day, "overlaps", len(overlaps))
	} else {
		s.logger.Info("task reassigned", "id", id, "day", day)
	}
	return Event{Kind: EventReassigned, Task: task, Overlaps: overlaps}, nil
}

// uniqueID draws ids until one is not already in the collection
func (s *Service) uniqueID() domain.TaskID {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}
