// Package navigation tracks the board cursor across re-projections.
package navigation

import (
	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/ui/board"
)

// Position represents a computed position in the board
type Position struct {
	Column int  // 0 = Monday .. 6 = Sunday
	Task   int  // Index within the column
	Valid  bool // Whether a task is under the cursor
}

// Cursor tracks the selected task by id, so it follows the task when the
// board is rebuilt after an edit, a move or a filter change.
type Cursor struct {
	TaskID         domain.TaskID // Primary state: selected task id
	FallbackColumn int           // Column to use when TaskID is not found
	FallbackRow    int           // Row to use when TaskID is not found
}

// FindPosition computes the position of the cursor's task in columns
func (c *Cursor) FindPosition(columns []board.Column) Position {
	if c.TaskID != "" {
		for colIdx, col := range columns {
			for taskIdx, task := range col.Tasks {
				if task.ID == c.TaskID {
					return Position{Column: colIdx, Task: taskIdx, Valid: true}
				}
			}
		}
	}

	// Task gone (deleted or filtered out): stay near where it was
	col := c.FallbackColumn
	if col < 0 || col >= len(columns) {
		col = 0
	}
	if col < len(columns) && len(columns[col].Tasks) > 0 {
		row := min(max(c.FallbackRow, 0), len(columns[col].Tasks)-1)
		return Position{Column: col, Task: row, Valid: true}
	}
	return Position{Column: col, Task: 0, Valid: false}
}

// SetTask updates the cursor to point to a specific task
func (c *Cursor) SetTask(taskID domain.TaskID, column, row int) {
	c.TaskID = taskID
	c.FallbackColumn = column
	c.FallbackRow = row
}

// MoveVertical moves up or down within a column and returns the new id
func (c *Cursor) MoveVertical(columns []board.Column, delta int) domain.TaskID {
	pos := c.FindPosition(columns)
	if !pos.Valid {
		return c.TaskID
	}

	tasks := columns[pos.Column].Tasks
	newIdx := min(max(pos.Task+delta, 0), len(tasks)-1)
	c.SetTask(tasks[newIdx].ID, pos.Column, newIdx)
	return c.TaskID
}

// MoveHorizontal moves to an adjacent column
func (c *Cursor) MoveHorizontal(columns []board.Column, delta int) domain.TaskID {
	pos := c.FindPosition(columns)
	return c.JumpToColumnFrom(columns, pos, pos.Column+delta)
}

// JumpToStart moves to the first task in the current column
func (c *Cursor) JumpToStart(columns []board.Column) domain.TaskID {
	pos := c.FindPosition(columns)
	if pos.Valid {
		c.SetTask(columns[pos.Column].Tasks[0].ID, pos.Column, 0)
	}
	return c.TaskID
}

// JumpToEnd moves to the last task in the current column
func (c *Cursor) JumpToEnd(columns []board.Column) domain.TaskID {
	pos := c.FindPosition(columns)
	if pos.Valid {
		tasks := columns[pos.Column].Tasks
		c.SetTask(tasks[len(tasks)-1].ID, pos.Column, len(tasks)-1)
	}
	return c.TaskID
}

// JumpToColumn moves to column colIdx, keeping the row where possible
func (c *Cursor) JumpToColumn(columns []board.Column, colIdx int) domain.TaskID {
	return c.JumpToColumnFrom(columns, c.FindPosition(columns), colIdx)
}

// JumpToColumnFrom moves from pos to column colIdx
func (c *Cursor) JumpToColumnFrom(columns []board.Column, pos Position, colIdx int) domain.TaskID {
	if len(columns) == 0 {
		return c.TaskID
	}
	colIdx = min(max(colIdx, 0), len(columns)-1)

	tasks := columns[colIdx].Tasks
	if len(tasks) == 0 {
		c.SetTask("", colIdx, pos.Task)
		return ""
	}
	row := min(pos.Task, len(tasks)-1)
	c.SetTask(tasks[row].ID, colIdx, row)
	return c.TaskID
}

// Service manages navigation state
type Service struct {
	cursor Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{}
}

// GetCursor returns the current cursor (for read access)
func (s *Service) GetCursor() *Cursor {
	return &s.cursor
}

// GetPosition returns the computed position of the cursor in columns
func (s *Service) GetPosition(columns []board.Column) Position {
	return s.cursor.FindPosition(columns)
}

// BoardCursor converts the position into the renderer's cursor
func (s *Service) BoardCursor(columns []board.Column) board.Cursor {
	pos := s.GetPosition(columns)
	task := pos.Task
	if !pos.Valid {
		task = -1
	}
	return board.Cursor{Column: pos.Column, Task: task}
}

// GetCurrentTask returns the task under the cursor, or nil
func (s *Service) GetCurrentTask(columns []board.Column) *domain.Task {
	pos := s.cursor.FindPosition(columns)
	if !pos.Valid {
		return nil
	}
	task := columns[pos.Column].Tasks[pos.Task]
	return &task
}

// GetCurrentDay returns the day of the cursor's column
func (s *Service) GetCurrentDay(columns []board.Column) domain.Day {
	pos := s.cursor.FindPosition(columns)
	if pos.Column < len(columns) {
		return columns[pos.Column].Day
	}
	return domain.Monday
}

// MoveDown moves cursor down in current column
func (s *Service) MoveDown(columns []board.Column) {
	s.cursor.MoveVertical(columns, 1)
}

// MoveUp moves cursor up in current column
func (s *Service) MoveUp(columns []board.Column) {
	s.cursor.MoveVertical(columns, -1)
}

// MoveLeft moves cursor to the previous day
func (s *Service) MoveLeft(columns []board.Column) {
	s.cursor.MoveHorizontal(columns, -1)
}

// MoveRight moves cursor to the next day
func (s *Service) MoveRight(columns []board.Column) {
	s.cursor.MoveHorizontal(columns, 1)
}

// GotoTop moves cursor to first task in column
func (s *Service) GotoTop(columns []board.Column) {
	s.cursor.JumpToStart(columns)
}

// GotoBottom moves cursor to last task in column
func (s *Service) GotoBottom(columns []board.Column) {
	s.cursor.JumpToEnd(columns)
}

// GotoColumn moves cursor to a day column
func (s *Service) GotoColumn(columns []board.Column, col int) {
	s.cursor.JumpToColumn(columns, col)
}

// SelectTask directly sets the cursor to a specific task
func (s *Service) SelectTask(taskID domain.TaskID, column, row int) {
	s.cursor.SetTask(taskID, column, row)
}

// JumpToTaskByID finds and selects a task by id
func (s *Service) JumpToTaskByID(columns []board.Column, taskID domain.TaskID) bool {
	for colIdx, col := range columns {
		for row, task := range col.Tasks {
			if task.ID == taskID {
				s.cursor.SetTask(task.ID, colIdx, row)
				return true
			}
		}
	}
	return false
}
