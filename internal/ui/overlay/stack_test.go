package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// mockOverlay is a simple overlay implementation for testing
type mockOverlay struct {
	title   string
	width   int
	height  int
	value   string
	updates int
}

func (m mockOverlay) Init() tea.Cmd {
	return nil
}

func (m mockOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.updates++
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return m, func() tea.Msg {
				return SelectionMsg{Key: "test", Value: m.value}
			}
		case "esc":
			return m, closeOverlay
		}
	}
	return m, nil
}

func (m mockOverlay) View() string {
	return m.title
}

func (m mockOverlay) Title() string {
	return m.title
}

func (m mockOverlay) Size() (width, height int) {
	return m.width, m.height
}

func TestNewStack(t *testing.T) {
	stack := NewStack()
	if stack == nil {
		t.Fatal("NewStack returned nil")
	}
	if !stack.IsEmpty() {
		t.Error("New stack should be empty")
	}
	if stack.Current() != nil {
		t.Error("Current should be nil on an empty stack")
	}
	if stack.Pop() != nil {
		t.Error("Pop should return nil on an empty stack")
	}
}

func TestStackPushPop(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "first"})
	stack.Push(mockOverlay{title: "second"})

	if stack.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", stack.Len())
	}
	if got := stack.Current().Title(); got != "second" {
		t.Errorf("Current().Title() = %q, want second", got)
	}
	if got := stack.Pop().Title(); got != "second" {
		t.Errorf("Pop().Title() = %q, want second", got)
	}
	if got := stack.Current().Title(); got != "first" {
		t.Errorf("Current().Title() = %q, want first", got)
	}

	stack.Clear()
	if !stack.IsEmpty() {
		t.Error("Stack should be empty after Clear")
	}
}

func TestStackUpdate(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "dialog", value: "picked"})

	cmd := stack.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Update should return the overlay's command")
	}
	sel, ok := cmd().(SelectionMsg)
	if !ok || sel.Value != "picked" {
		t.Errorf("cmd() = %#v, want SelectionMsg with value picked", cmd())
	}
	if got := stack.Current().(mockOverlay).updates; got != 1 {
		t.Errorf("updated overlay not stored, updates = %d", got)
	}

	if cmd := stack.Update(CloseOverlayMsg{}); cmd != nil {
		t.Error("CloseOverlayMsg should not produce a command")
	}
	if !stack.IsEmpty() {
		t.Error("CloseOverlayMsg should pop the overlay")
	}

	if cmd := stack.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Update on empty stack should return nil")
	}
}
