package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the aquarium view.
type KeyMap struct {
	Pause      key.Binding
	Repopulate key.Binding
	Bubbles    key.Binding
	NextSpawn  key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Bubbles, k.NextSpawn, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Repopulate, k.Bubbles, k.NextSpawn},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Repopulate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restock"),
		),
		Bubbles: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bubbles"),
		),
		NextSpawn: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "click spawns"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
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
}
