package tui

import "github.com/charmbracelet/bubbles/key"

// SessionKeyMap defines the key bindings for the coaching session.
// Digit keys are handled separately since they feed the entry buffer.
type SessionKeyMap struct {
	Commit     key.Binding
	Undo       key.Binding
	ClearEntry key.Binding
	EndGame    key.Binding
	ResetGame  key.Binding
	AddMoyenne key.Binding
	SwitchTab  key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Undo, k.EndGame, k.SwitchTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Commit, k.Undo, k.ClearEntry},
		{k.EndGame, k.ResetGame, k.AddMoyenne},
		{k.SwitchTab, k.Quit},
	}
}

// DefaultSessionKeyMap returns default key bindings.
func DefaultSessionKeyMap() SessionKeyMap {
	return SessionKeyMap{
		Commit: key.NewBinding(
			key.WithKeys("enter", "+"),
			key.WithHelp("enter", "commit score"),
		),
		Undo: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "undo digit"),
		),
		ClearEntry: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "clear entry"),
		),
		EndGame: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end game"),
		),
		ResetGame: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset game"),
		),
		AddMoyenne: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add moyenne"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
