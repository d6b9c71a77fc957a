package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the deck key bindings; sections are changed with the mouse only
type KeyMap struct {
	Copy      key.Binding
	Submit    key.Binding
	Blur      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy event details"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send reply"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave message"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Quit}
}

// FullHelp returns all bindings grouped by column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Copy, k.Submit, k.Blur}, {k.Quit, k.ForceQuit}}
}
