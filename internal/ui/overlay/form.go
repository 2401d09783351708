package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/weekplan/internal/domain"
)

// TaskSubmittedMsg is emitted when the task form is submitted. ID is
// empty for a new task. The form stays open until the app closes it, so
// a rejected submit can be corrected in place.
type TaskSubmittedMsg struct {
	ID    domain.TaskID
	Draft domain.Draft
}

const (
	fieldTitle = iota
	fieldDay
	fieldStart
	fieldEnd
	fieldCategory
	fieldSubmit
	fieldCount
)

// TaskForm is the create/edit dialog
type TaskForm struct {
	editID     domain.TaskID
	title      textinput.Model
	start      textinput.Model
	end        textinput.Model
	day        int // index into domain.Week
	categories []domain.Category
	category   int // index into categories
	focusIndex int
	err        string
	styles     *Styles
}

func newClockInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "HH:MM"
	ti.CharLimit = 5
	ti.Width = 6
	ti.SetValue(value)
	return ti
}

// NewTaskForm opens an empty form with the day preselected
func NewTaskForm(day domain.Day, styles *Styles) *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	f := &TaskForm{
		title:    ti,
		start:    newClockInput("09:00"),
		end:      newClockInput("10:00"),
		day:        max(day.Index(), 0),
		categories: domain.Categories,
		category:   categoryIndex(domain.Categories, domain.CategoryOther),
		styles:     styles,
	}
	return f
}

// NewEditTaskForm opens the form prefilled from task
func NewEditTaskForm(task domain.Task, styles *Styles) *TaskForm {
	f := NewTaskForm(task.Day, styles)
	f.editID = task.ID
	f.title.SetValue(task.Title)
	f.title.CursorEnd()
	f.start.SetValue(task.StartTime)
	f.end.SetValue(task.EndTime)
	// A category this version does not know stays selectable so that
	// saving other fields keeps it
	if task.Category != "" && !task.Category.Known() {
		f.categories = append(append([]domain.Category{}, domain.Categories...), task.Category)
	}
	f.category = categoryIndex(f.categories, task.Category)
	return f
}

func categoryIndex(categories []domain.Category, c domain.Category) int {
	for i, k := range categories {
		if k == c {
			return i
		}
	}
	return len(domain.Categories) - 1 // other
}

// EditID returns the id being edited, or "" when creating
func (f *TaskForm) EditID() domain.TaskID {
	return f.editID
}

// SetError shows a rejection message under the fields
func (f *TaskForm) SetError(msg string) {
	f.err = msg
}

// Draft returns the current field values
func (f *TaskForm) Draft() domain.Draft {
	return domain.Draft{
		Title:     strings.TrimSpace(f.title.Value()),
		Day:       domain.Week[f.day],
		StartTime: strings.TrimSpace(f.start.Value()),
		EndTime:   strings.TrimSpace(f.end.Value()),
		Category:  f.categories[f.category],
	}
}

// Init initializes the overlay
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f *TaskForm) setFocus(i int) {
	f.focusIndex = (i + fieldCount) % fieldCount
	inputs := map[int]*textinput.Model{
		fieldTitle: &f.title,
		fieldStart: &f.start,
		fieldEnd:   &f.end,
	}
	for idx, in := range inputs {
		if idx == f.focusIndex {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *TaskForm) submit() tea.Cmd {
	msg := TaskSubmittedMsg{ID: f.editID, Draft: f.Draft()}
	return func() tea.Msg { return msg }
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return f, closeOverlay
		case "ctrl+s":
			return f, f.submit()
		case "tab", "down":
			f.setFocus(f.focusIndex + 1)
			return f, nil
		case "shift+tab", "up":
			f.setFocus(f.focusIndex - 1)
			return f, nil
		case "enter":
			if f.focusIndex == fieldSubmit {
				return f, f.submit()
			}
			f.setFocus(f.focusIndex + 1)
			return f, nil
		}

		switch f.focusIndex {
		case fieldDay:
			f.day = cycle(f.day, len(domain.Week), key.String())
			return f, nil
		case fieldCategory:
			f.category = cycle(f.category, len(f.categories), key.String())
			return f, nil
		case fieldSubmit:
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldStart:
		f.start, cmd = f.start.Update(msg)
	case fieldEnd:
		f.end, cmd = f.end.Update(msg)
	}
	return f, cmd
}

// cycle moves a selector index for left/right style keys
func cycle(i, n int, key string) int {
	switch key {
	case "left", "h":
		return (i - 1 + n) % n
	case "right", "l", " ", "space":
		return (i + 1) % n
	}
	return i
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	row := func(field int, label, value string) {
		labelStyle := f.styles.Label
		if f.focusIndex == field {
			labelStyle = f.styles.LabelFocused
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString("  ")
		b.WriteString(value)
		b.WriteString("\n\n")
	}

	row(fieldTitle, "Title:", f.title.View())
	row(fieldDay, "Day:", f.selector(len(domain.Week), f.day, func(i int) string { return domain.Week[i].Short() }))
	row(fieldStart, "Start:", f.start.View())
	row(fieldEnd, "End:", f.end.View())
	row(fieldCategory, "Category:", f.selector(len(f.categories), f.category, func(i int) string { return f.categories[i].String() }))

	if f.err != "" {
		b.WriteString(f.styles.Error.Render("✗ " + f.err))
		b.WriteString("\n\n")
	}

	submitStyle := f.styles.MenuItem
	if f.focusIndex == fieldSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	label := "[ Create Task ]"
	if f.editID != "" {
		label = "[ Save Changes ]"
	}
	b.WriteString(submitStyle.Render(label))
	b.WriteString("\n\n")

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " " + f.styles.Footer.Render("Next"),
		f.styles.MenuKey.Render("←/→") + " " + f.styles.Footer.Render("Choose"),
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.styles.Footer.Render("Save"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.Footer.Render("Cancel"),
	}
	b.WriteString(strings.Join(hints, " • "))

	return b.String()
}

func (f *TaskForm) selector(n, current int, label func(int) string) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		if i == current {
			parts[i] = f.styles.MenuItemActive.Render("●" + label(i))
		} else {
			parts[i] = f.styles.MenuItem.Render(" " + label(i))
		}
	}
	return strings.Join(parts, " ")
}

// Title returns the overlay title
func (f *TaskForm) Title() string {
	if f.editID != "" {
		return "Edit Task"
	}
	return "New Task"
}

// Size returns the overlay dimensions
func (f *TaskForm) Size() (width, height int) {
	return 72, 22
}
