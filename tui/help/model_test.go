package help

import (
	"testing"

	"github.com/dylan/matchdrag/tui/shared"
	"github.com/stretchr/testify/assert"
)

func TestViewListsEveryGroup(t *testing.T) {
	m := New()
	m.SetSize(100, 40)
	view := m.View()

	assert.Contains(t, view, "Matching Help")
	for _, g := range shared.Keys.Groups() {
		assert.Contains(t, view, g.Title)
		for _, k := range g.Bindings {
			assert.Contains(t, view, k.Help().Desc)
		}
	}
	assert.Contains(t, view, "Mouse")
	assert.Contains(t, view, "release anywhere else to cancel")
}

func TestFullHelpFollowsGroups(t *testing.T) {
	groups := shared.Keys.Groups()
	cols := shared.Keys.FullHelp()
	assert.Len(t, cols, len(groups))
	for i, g := range groups {
		assert.Equal(t, len(g.Bindings), len(cols[i]), g.Title)
	}
}
