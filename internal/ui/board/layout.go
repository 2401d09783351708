package board

// Row geometry shared by Render and HitTest
const (
	headerHeight = 2 // header line plus spacer
	cardHeight   = 5 // border, title, time, badge, border
	minColWidth  = 10
)

// columnWidth returns the width of each column for a board width
func columnWidth(columns, width int) int {
	if columns == 0 {
		return 0
	}
	return max(width/columns, minColWidth)
}

// visibleCards returns how many cards fit under the header
func visibleCards(height int) int {
	return max((height-headerHeight)/cardHeight, 0)
}

// scrollOffset returns the index of the first card drawn in a column so
// that the cursor card stays visible.
func scrollOffset(total, cursorTask int, isActive bool, height int) int {
	visible := visibleCards(height)
	if !isActive || visible == 0 || total <= visible {
		return 0
	}
	if cursorTask >= visible {
		return min(cursorTask-visible+1, total-visible)
	}
	return 0
}

// Hit is the result of mapping a screen cell onto the board
type Hit struct {
	Column int  // -1 when outside every column
	Task   int  // -1 when not over a card
	OnCard bool // true when Task is valid
}

// HitTest maps the cell (x, y), relative to the board's top-left corner,
// to a column and card.
func HitTest(columns []Column, cursor Cursor, width, height, x, y int) Hit {
	miss := Hit{Column: -1, Task: -1}
	if len(columns) == 0 || x < 0 || y < 0 || y >= height {
		return miss
	}

	cw := columnWidth(len(columns), width)
	col := x / cw
	if col >= len(columns) {
		return miss
	}

	hit := Hit{Column: col, Task: -1}
	if y < headerHeight {
		return hit
	}

	tasks := columns[col].Tasks
	offset := scrollOffset(len(tasks), cursor.Task, col == cursor.Column, height)
	slot := (y - headerHeight) / cardHeight
	if slot >= visibleCards(height) {
		return hit
	}
	idx := offset + slot
	if idx < len(tasks) {
		hit.Task = idx
		hit.OnCard = true
	}
	return hit
}
