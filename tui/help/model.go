package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dylan/matchdrag/tui/shared"
)

// mouseHelp describes the pointer gestures, which have no key bindings.
var mouseHelp = []string{
	"press on an item, release over a slot or the choices list",
	"release anywhere else to cancel",
}

type Model struct {
	keys   shared.KeyMap
	width  int
	height int
}

func New() Model {
	return Model{keys: shared.Keys}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(shared.HelpTitleStyle.Render("Matching Help"))
	b.WriteString("\n\n")

	for _, g := range m.keys.Groups() {
		writeSection(&b, g.Title)
		for _, k := range g.Bindings {
			h := k.Help()
			b.WriteString("  " + shared.HelpKeyStyle.Render(h.Key) + "  " + shared.HelpDescStyle.Render(h.Desc) + "\n")
		}
		b.WriteString("\n")
	}

	writeSection(&b, "Mouse")
	for _, line := range mouseHelp {
		b.WriteString("  " + shared.HelpDescStyle.Render(line) + "\n")
	}

	content := shared.HelpOverlayStyle.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func writeSection(b *strings.Builder, title string) {
	b.WriteString(shared.HelpGroupStyle.Render(title))
	b.WriteString("\n")
}
