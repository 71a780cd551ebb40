package shared

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Grab   key.Binding
	Cancel key.Binding
	Reset  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "responses"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "choices"),
	),
	Grab: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "pick up / drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Cancel, k.Left, k.Right, k.Help, k.Quit}
}

// KeyGroup is one titled section of the help overlay.
type KeyGroup struct {
	Title    string
	Bindings []key.Binding
}

func (k KeyMap) Groups() []KeyGroup {
	return []KeyGroup{
		{Title: "Navigation", Bindings: []key.Binding{k.Up, k.Down, k.Left, k.Right}},
		{Title: "Dragging", Bindings: []key.Binding{k.Grab, k.Cancel}},
		{Title: "General", Bindings: []key.Binding{k.Reset, k.Help, k.Quit}},
	}
}

// FullHelp lists the same columns as Groups, untitled.
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := k.Groups()
	cols := make([][]key.Binding, len(groups))
	for i, g := range groups {
		cols[i] = g.Bindings
	}
	return cols
}
