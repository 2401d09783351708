package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/weekplan/internal/types"
	"github.com/riordanpawley/weekplan/internal/ui/styles"
)

func TestToastRenderer_Render_Empty(t *testing.T) {
	renderer := New(styles.New(types.ThemeDark))

	assert.Equal(t, "", renderer.Render(types.Toast{}, 80))
}

func TestToastRenderer_Render_Levels(t *testing.T) {
	renderer := New(styles.New(types.ThemeLight))

	for _, level := range []types.ToastLevel{types.ToastInfo, types.ToastSuccess, types.ToastWarning, types.ToastError} {
		t.Run(level.String(), func(t *testing.T) {
			result := renderer.Render(types.Toast{Level: level, Message: "Task created"}, 80)
			assert.Contains(t, ansi.Strip(result), "Task created")
		})
	}
}

func TestToastRenderer_Render_WidthCapped(t *testing.T) {
	renderer := New(styles.New(types.ThemeDark))

	result := renderer.Render(types.Toast{Message: strings.Repeat("long message ", 20)}, 300)

	for _, line := range strings.Split(result, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 42, "40 wide plus border")
	}
}

func TestNotifier_ShowReplaces(t *testing.T) {
	n := NewNotifier(time.Millisecond)

	require.NotNil(t, n.Show(types.ToastInfo, "first"))
	firstSeq := n.seq
	n.Show(types.ToastError, "second")

	cur, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "second", cur.Message)
	assert.Equal(t, types.ToastError, cur.Level)

	assert.False(t, n.Dismiss(firstSeq), "stale dismissal must not hide the newer toast")
	_, ok = n.Current()
	assert.True(t, ok)

	assert.True(t, n.Dismiss(cur.Seq))
	_, ok = n.Current()
	assert.False(t, ok)
}

func TestNotifier_TickCarriesSeq(t *testing.T) {
	n := NewNotifier(time.Millisecond)

	cmd := n.Show(types.ToastSuccess, "saved")
	msg, ok := cmd().(DismissMsg)

	require.True(t, ok)
	assert.Equal(t, n.seq, msg.Seq)
	assert.True(t, n.Dismiss(msg.Seq))
}

func TestNewNotifier_DefaultDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, NewNotifier(0).Duration())
}
