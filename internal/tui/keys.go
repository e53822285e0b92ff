package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextField key.Binding
	PrevField key.Binding
	PickFile  key.Binding
	Submit    key.Binding
	ToResults key.Binding
	ToForm    key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Export    key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Close     key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		PickFile:  key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "cycle CSV files")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "upload")),
		ToResults: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "browse results")),
		ToForm:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit files")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open status")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export CSV")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ToResults, k.Export, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.PickFile, k.Submit},
		{k.Up, k.Down, k.Open, k.Export},
		{k.NextPage, k.PrevPage, k.Close},
		{k.ToForm, k.Reset, k.Quit},
	}
}
