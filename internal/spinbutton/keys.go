package spinbutton

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys the spin button reacts to. Any other key is
// treated as text entry.
type KeyMap struct {
	Increment key.Binding
	Decrement key.Binding
	Commit    key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns arrow keys for stepping, Enter to commit and Esc to
// revert.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "decrement"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "revert"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Commit, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement},
		{k.Commit, k.Cancel},
	}
}

// isArrow reports whether the key steps the value.
func (k KeyMap) isArrow(msg keyLike) bool {
	return key.Matches(msg, k.Increment) || key.Matches(msg, k.Decrement)
}

// keyLike is satisfied by tea.KeyMsg and KeyReleaseMsg.
type keyLike interface {
	String() string
}
