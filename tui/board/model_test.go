package board

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/matchdrag/matching"
	"github.com/dylan/matchdrag/tui/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, choices, slots, placeholders int) Model {
	t.Helper()
	s, err := matching.New(choices, slots, placeholders)
	require.NoError(t, err)
	m := New(s, Options{Prompt: "Just some info", PoolWidth: 40, WidgetID: "w"})
	m.SetSize(80, 20)
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func ids(s *matching.Store) string {
	return s.String()
}

// collect runs cmd and returns every message it produces, flattening batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestKeyboardAnswer(t *testing.T) {
	m := newBoard(t, 2, 2, 2)

	m = press(m, " ")
	require.True(t, m.Dragging())
	ctx, ok := m.Widget().Context()
	require.True(t, ok)
	assert.Equal(t, matching.RegionPool, ctx.Origin)

	m = press(m, "h", "j")
	m, cmd := m.Update(keyMsg(" "))
	assert.False(t, m.Dragging())
	assert.Equal(t, "pool=[1] slots=[_0 0]", ids(m.Store()))

	var changed bool
	for _, msg := range collect(cmd) {
		if sc, ok := msg.(shared.StoreChangedMsg); ok {
			changed = true
			assert.Same(t, m.Store(), sc.Store)
		}
	}
	assert.True(t, changed)
}

func TestKeyboardCancel(t *testing.T) {
	m := newBoard(t, 2, 2, 2)
	before := m.Store()

	m = press(m, " ", "h", "esc")
	assert.False(t, m.Dragging())
	assert.Same(t, before, m.Store())
	_, active := m.Widget().Context()
	assert.False(t, active)
}

func TestGrabbingPlaceholderGivesFeedback(t *testing.T) {
	m := newBoard(t, 2, 2, 2)
	m = press(m, "h")

	m, cmd := m.Update(keyMsg(" "))
	assert.False(t, m.Dragging())
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	fb, ok := msgs[0].(shared.FeedbackMsg)
	require.True(t, ok)
	assert.Equal(t, shared.FeedbackWarning, fb.Feedback.Level)
	assert.Equal(t, "Empty slots cannot be dragged", fb.Feedback.Message)
}

func TestKeyboardUnanswerToAppendRow(t *testing.T) {
	m := newBoard(t, 2, 2, 1)
	require.Equal(t, "pool=[0 1] slots=[2 _0]", ids(m.Store()))

	// pick up slot 0, move to the pool's append row
	m = press(m, "h", " ", "l", "j", "j", "j")
	assert.Equal(t, matching.Location{Region: matching.RegionPool, Index: 2}, m.Cursor())
	m = press(m, " ")
	assert.Equal(t, "pool=[0 1 2] slots=[_1 _0]", ids(m.Store()))
	assert.Equal(t, matching.Location{Region: matching.RegionPool, Index: 2}, m.Cursor())
}

func TestMouseDragToSlot(t *testing.T) {
	m := newBoard(t, 3, 2, 2)

	// slots column is x < 48; list rows start at y = 2
	m, _ = m.Update(mouse(tea.MouseActionPress, 60, 3))
	require.True(t, m.Dragging())
	m, _ = m.Update(mouse(tea.MouseActionMotion, 10, 2))
	m, _ = m.Update(mouse(tea.MouseActionRelease, 10, 2))

	assert.False(t, m.Dragging())
	assert.Equal(t, "pool=[0 2] slots=[1 _1]", ids(m.Store()))
}

func TestMouseReleaseOutsideCancels(t *testing.T) {
	m := newBoard(t, 3, 2, 2)
	before := m.Store()

	m, _ = m.Update(mouse(tea.MouseActionPress, 60, 2))
	require.True(t, m.Dragging())
	m, _ = m.Update(mouse(tea.MouseActionRelease, 10, 0))

	assert.False(t, m.Dragging())
	assert.Same(t, before, m.Store())
}

func TestMousePoolReorderOntoAppendRow(t *testing.T) {
	m := newBoard(t, 3, 1, 1)

	m, _ = m.Update(mouse(tea.MouseActionPress, 60, 2))
	m, _ = m.Update(mouse(tea.MouseActionRelease, 60, 5))

	assert.Equal(t, "pool=[1 2 0] slots=[_0]", ids(m.Store()))
}

func TestMousePressOnPlaceholderDoesNotDrag(t *testing.T) {
	m := newBoard(t, 1, 1, 1)
	m, _ = m.Update(mouse(tea.MouseActionPress, 10, 2))
	assert.False(t, m.Dragging())
}

func TestResetRestoresInitialStore(t *testing.T) {
	m := newBoard(t, 2, 2, 2)
	initial := m.Store()

	m = press(m, " ", "h", " ")
	require.NotSame(t, initial, m.Store())

	m, _ = m.Update(shared.ResetMsg{})
	assert.Same(t, initial, m.Store())
}

func TestViewShowsBothColumns(t *testing.T) {
	m := newBoard(t, 2, 2, 1)
	view := m.View()

	assert.Contains(t, view, "Responses")
	assert.Contains(t, view, "Choices")
	assert.Contains(t, view, "item 0")
	assert.Contains(t, view, "item 2")
	assert.Contains(t, view, "Just some info")
	assert.NotContains(t, view, "drop here")

	m = press(m, "h", " ")
	assert.Contains(t, m.View(), "drop here")
	assert.Equal(t, 2+3, len(strings.Split(m.View(), "\n")))
}
