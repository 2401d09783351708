package app

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/services/planner"
	"github.com/riordanpawley/weekplan/internal/types"
	"github.com/riordanpawley/weekplan/internal/ui/board"
	"github.com/riordanpawley/weekplan/internal/ui/overlay"
)

const deleteDialogTitle = "Delete Task"

// openCreateForm opens the new task form on the cursor's day
func (m Model) openCreateForm(columns []board.Column) (tea.Model, tea.Cmd) {
	day := m.nav.GetCurrentDay(columns)
	return m, m.overlayStack.Push(overlay.NewTaskForm(day, m.overlayStyles))
}

// openEditForm opens the form prefilled with the selected task
func (m Model) openEditForm(columns []board.Column) (tea.Model, tea.Cmd) {
	task := m.nav.GetCurrentTask(columns)
	if task == nil {
		return m, nil
	}
	return m, m.overlayStack.Push(overlay.NewEditTaskForm(*task, m.overlayStyles))
}

// openDeleteConfirm asks before deleting the selected task
func (m Model) openDeleteConfirm(columns []board.Column) (tea.Model, tea.Cmd) {
	task := m.nav.GetCurrentTask(columns)
	if task == nil {
		return m, nil
	}
	m.pendingDelete = task.ID
	message := fmt.Sprintf("Delete %q (%s, %s)?", task.Title, task.Day.Title(), task.TimeRange())
	return m, m.overlayStack.Push(overlay.NewConfirmDialog(deleteDialogTitle, message, m.overlayStyles))
}

// handleSelection handles dialog choices
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok {
		return m, nil
	}

	m.overlayStack.Pop()
	id := m.pendingDelete
	m.pendingDelete = ""
	if !result.Confirmed || id == "" {
		return m, nil
	}
	return m.deleteTask(id)
}

// handleSubmit creates or updates from the form. A rejected submit keeps
// the form open with the reason shown inline.
func (m Model) handleSubmit(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	var (
		ev  planner.Event
		err error
	)
	if msg.ID == "" {
		ev, err = m.store.Create(msg.Draft)
	} else {
		ev, err = m.store.Update(msg.ID, domain.PatchFromDraft(msg.Draft))
	}

	if err != nil {
		if form, ok := m.overlayStack.Current().(*overlay.TaskForm); ok {
			form.SetError(describeError(err))
		}
		return m, m.notify(types.ToastError, describeError(err))
	}

	m.overlayStack.Pop()
	if !ev.Changed() {
		return m, nil
	}

	m.nav.JumpToTaskByID(m.buildColumns(), ev.Task.ID)
	if ev.Kind == planner.EventCreated {
		return m, m.notify(types.ToastSuccess, "Task created")
	}
	return m, m.notify(types.ToastSuccess, "Task updated")
}

// deleteTask removes id from the store
func (m Model) deleteTask(id domain.TaskID) (tea.Model, tea.Cmd) {
	ev, err := m.store.Delete(id)
	if err != nil {
		return m, m.notify(types.ToastError, describeError(err))
	}
	if !ev.Changed() {
		return m, nil
	}
	return m, m.notify(types.ToastSuccess, "Task deleted")
}

// toggleComplete flips the completion flag of id
func (m Model) toggleComplete(id domain.TaskID) (tea.Model, tea.Cmd) {
	ev, err := m.store.ToggleComplete(id)
	if err != nil {
		return m, m.notify(types.ToastError, describeError(err))
	}
	if !ev.Changed() {
		return m, nil
	}
	if ev.Task.IsComplete {
		return m, m.notify(types.ToastSuccess, "Task completed")
	}
	return m, m.notify(types.ToastInfo, "Task reopened")
}

// reassign moves id to day and keeps the cursor on it
func (m Model) reassign(id domain.TaskID, day domain.Day) (tea.Model, tea.Cmd) {
	ev, err := m.store.ReassignDay(id, day)
	if err != nil {
		return m, m.notify(types.ToastError, describeError(err))
	}
	if !ev.Changed() {
		return m, nil
	}

	m.nav.JumpToTaskByID(m.buildColumns(), id)
	if len(ev.Overlaps) > 0 {
		return m, m.notify(types.ToastWarning,
			fmt.Sprintf("Task moved to %s, but it overlaps %s", day.Title(), describeTasks(ev.Overlaps)))
	}
	return m, m.notify(types.ToastSuccess, "Task moved to "+day.Title())
}

// toggleTheme switches light/dark and stores the choice
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	next := m.theme.Toggle()
	m.applyTheme(next)

	if m.themes != nil {
		if err := m.themes.Save(next); err != nil {
			m.logger.Warn("theme not saved", "theme", next, "err", err)
			return m, m.notify(types.ToastWarning, "Theme changed but could not be saved")
		}
	}
	return m, m.notify(types.ToastInfo, "Theme: "+next.String())
}

// describeError turns a store error into notification text
func describeError(err error) string {
	var storageErr *domain.StorageError
	switch {
	case errors.As(err, &storageErr):
		return "Could not save: " + storageErr.Err.Error()
	case errors.Is(err, domain.ErrEmptyTitle):
		return "Title is required"
	case errors.Is(err, domain.ErrInvalidTime):
		return "Times must be HH:MM"
	case errors.Is(err, domain.ErrInvalidRange):
		return "End time must be after start time"
	case errors.Is(err, domain.ErrInvalidDay):
		return "Unknown day"
	default:
		msg := err.Error()
		if msg == "" {
			return "Something went wrong"
		}
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
}

// describeTasks lists tasks as "Title (09:00 - 10:00)"
func describeTasks(tasks []domain.Task) string {
	parts := make([]string, len(tasks))
	for i, t := range tasks {
		parts[i] = fmt.Sprintf("%q (%s)", t.Title, t.TimeRange())
	}
	return strings.Join(parts, ", ")
}
