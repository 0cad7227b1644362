package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	Cancel    key.Binding
	Focus     key.Binding
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add/update"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch focus"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x"),
		key.WithHelp("d/x", "delete"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// focusKeys shows the bindings that apply to one focus area.
type focusKeys struct {
	keyMap
	focus focus
}

func (k focusKeys) ShortHelp() []key.Binding {
	if k.focus == focusList {
		return []key.Binding{k.Up, k.Down, k.Edit, k.Delete, k.Focus, k.Quit}
	}
	return []key.Binding{k.Submit, k.Cancel, k.Focus, k.ForceQuit}
}

func (k focusKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
