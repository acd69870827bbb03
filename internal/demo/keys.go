package demo

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/spinbutton/internal/spinbutton"
)

// formKeyMap defines key bindings for the form. Printable keys are left to
// the focused field, so help and quit use keys that cannot be typed.
type formKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Quit key.Binding

	Field spinbutton.KeyMap
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Field: spinbutton.DefaultKeyMap(),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Field.Increment, k.Field.Decrement, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Field.Increment, k.Field.Decrement},
		{k.Field.Commit, k.Field.Cancel},
		{k.Help, k.Quit},
	}
}
