package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

func testStyles() *Styles {
	return New(styles.Macchiato)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selection(t *testing.T, cmd tea.Cmd) SelectionMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(SelectionMsg)
	require.True(t, ok, "expected SelectionMsg")
	return msg
}

func TestNewConfirmDialog(t *testing.T) {
	dialog := NewConfirmDialog("Delete Task", "Delete \"Gym\"?", testStyles())

	assert.Equal(t, "Delete Task", dialog.Title())
	assert.False(t, dialog.selected, "default selection is No")
	w, h := dialog.Size()
	assert.Equal(t, 56, w)
	assert.Equal(t, 7, h)
}

func TestConfirmDialog_Keys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want bool
	}{
		{"y confirms", []tea.KeyMsg{runeKey("y")}, true},
		{"Y confirms", []tea.KeyMsg{runeKey("Y")}, true},
		{"n cancels", []tea.KeyMsg{runeKey("n")}, false},
		{"esc cancels", []tea.KeyMsg{{Type: tea.KeyEsc}}, false},
		{"enter defaults to no", []tea.KeyMsg{{Type: tea.KeyEnter}}, false},
		{"left then enter", []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyEnter}}, true},
		{"tab then enter", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyEnter}}, true},
		{"h then l then enter", []tea.KeyMsg{runeKey("h"), runeKey("l"), {Type: tea.KeyEnter}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := NewConfirmDialog("Delete", "Sure?", testStyles())

			var cmd tea.Cmd
			for _, k := range tt.keys {
				_, cmd = dialog.Update(k)
			}

			msg := selection(t, cmd)
			result, ok := msg.Value.(ConfirmResult)
			require.True(t, ok)
			assert.Equal(t, tt.want, result.Confirmed)
			if tt.want {
				assert.Equal(t, "yes", msg.Key)
			} else {
				assert.Equal(t, "no", msg.Key)
			}
		})
	}
}

func TestConfirmDialog_View(t *testing.T) {
	view := NewConfirmDialog("Delete", "Delete \"Gym\"?", testStyles()).View()

	assert.Contains(t, view, "Delete \"Gym\"?")
	assert.Contains(t, view, "[Y] Yes")
	assert.Contains(t, view, "[N] No")
}
