package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the board keybindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PickDrop   key.Binding
	NewRight   key.Binding
	NewLeft    key.Binding
	DropRight  key.Binding
	DropLeft   key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PickDrop:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "pick up/drop")),
		NewRight:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new column right")),
		NewLeft:   key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new column left")),
		DropRight: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove column right")),
		DropLeft:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "remove column left")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset layout")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickDrop, k.NewRight, k.DropRight, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PickDrop, k.Reset},
		{k.NewRight, k.NewLeft, k.DropRight, k.DropLeft},
		{k.Help, k.Quit},
	}
}
