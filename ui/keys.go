package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings for the joke screen.
type keyMap struct {
	Next      key.Binding
	Retry     key.Binding
	Copy      key.Binding
	Share     key.Binding
	Save      key.Binding
	NextTheme key.Binding
	PrevTheme key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n", " "),
			key.WithHelp("n", "new joke"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Save: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "save"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "prev theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Copy, k.Share, k.Save, k.NextTheme, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Retry, k.Quit},
		{k.Copy, k.Share, k.Save},
		{k.NextTheme, k.PrevTheme},
	}
}
