package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/ui/board"
)

// handleMouse processes pointer input. The board starts at row 0.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.overlayStack.IsEmpty() {
		return m.handleOverlayMouse(msg)
	}
	if m.agenda {
		return m, nil
	}

	columns := m.buildColumns()
	cursor := m.nav.BoardCursor(columns)
	hit := board.HitTest(columns, cursor, m.width, m.boardHeight(), msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.nav.MoveDown(columns)
			return m, nil
		case tea.MouseButtonWheelUp:
			m.nav.MoveUp(columns)
			return m, nil
		case tea.MouseButtonLeft:
			return m.mousePress(columns, hit)
		}

	case tea.MouseActionMotion:
		if m.drag != nil && hit.Column >= 0 {
			m.drag.target = hit.Column
			if hit.Column != m.drag.from {
				m.drag.moved = true
			}
		}

	case tea.MouseActionRelease:
		return m.mouseRelease(hit)
	}

	return m, nil
}

// mousePress selects what is under the pointer and starts a drag when it
// is a card.
func (m Model) mousePress(columns []board.Column, hit board.Hit) (tea.Model, tea.Cmd) {
	if hit.Column < 0 {
		return m, nil
	}

	// A click while carrying with the keyboard drops on that day
	if m.editor.IsMove() {
		m.editor.SetTarget(hit.Column)
		carry := m.editor.Drop()
		if carry == nil || carry.Target == carry.From {
			return m, nil
		}
		return m.reassign(carry.TaskID, domain.Week[carry.Target])
	}

	if !hit.OnCard {
		m.nav.GotoColumn(columns, hit.Column)
		return m, nil
	}

	task := columns[hit.Column].Tasks[hit.Task]
	current := m.nav.GetCurrentTask(columns)
	m.drag = &mouseDrag{
		taskID: task.ID,
		from:   hit.Column,
		target: hit.Column,
		wasSel: current != nil && current.ID == task.ID,
	}
	m.nav.SelectTask(task.ID, hit.Column, hit.Task)
	return m, nil
}

// mouseRelease finishes a drag: a drop on another day reassigns the task,
// a plain click on the already selected card opens the edit form.
func (m Model) mouseRelease(hit board.Hit) (tea.Model, tea.Cmd) {
	d := m.drag
	m.drag = nil
	if d == nil {
		return m, nil
	}

	target := d.target
	if hit.Column >= 0 {
		target = hit.Column
	}
	if target != d.from {
		return m.reassign(d.taskID, domain.Week[target])
	}
	if !d.moved && d.wasSel {
		return m.openEditForm(m.buildColumns())
	}
	return m, nil
}

// handleOverlayMouse closes the open dialog on a click outside it
func (m Model) handleOverlayMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x, y, w, h := m.overlayBounds()
	inside := msg.X >= x && msg.X < x+w && msg.Y >= y && msg.Y < y+h
	if inside {
		return m, nil
	}
	m.overlayStack.Pop()
	m.pendingDelete = ""
	return m, nil
}

// dragState returns the board's view of the current move, or nil
func (m Model) dragState() *board.Drag {
	if m.drag != nil && m.drag.moved {
		return &board.Drag{TaskID: m.drag.taskID, Target: m.drag.target}
	}
	if c := m.editor.Carried(); c != nil {
		return &board.Drag{TaskID: c.TaskID, Target: c.Target}
	}
	return nil
}
