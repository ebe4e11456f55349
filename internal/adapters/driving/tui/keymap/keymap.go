// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// FocusNext switches focus between the editor and chat panes.
	FocusNext key.Binding

	// Submit sends the chat input.
	Submit key.Binding

	// Up navigates up.
	Up key.Binding

	// Down navigates down.
	Down key.Binding

	// Left navigates left.
	Left key.Binding

	// Right navigates right.
	Right key.Binding

	// VisualSelect toggles selection mode in the editor.
	VisualSelect key.Binding

	// Confirm accepts the previewed suggestion.
	Confirm key.Binding

	// Cancel dismisses the toolbar, preview, or selection.
	Cancel key.Binding

	// Insert places an agent message into the document.
	Insert key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		VisualSelect: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "select"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert into document"),
		),
	}
}

// EditorHelp returns keybindings for the editor pane.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.VisualSelect, k.Confirm, k.Cancel, k.FocusNext, k.Quit}
}

// ChatHelp returns keybindings for the chat pane.
func (k *KeyMap) ChatHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Insert, k.FocusNext, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
