package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard's global keyboard shortcuts. List-local keys
// (cursor movement, hide, categorize) live in the transaction list
// component.
type KeyMap struct {
	// Period navigation
	PrevPeriod key.Binding
	NextPeriod key.Binding

	// View types
	ViewMonth   key.Binding
	ViewQuarter key.Binding
	ViewYear    key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevPeriod: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous period"),
		),
		NextPeriod: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next period"),
		),
		ViewMonth: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "monthly view"),
		),
		ViewQuarter: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quarterly view"),
		),
		ViewYear: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yearly view"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevPeriod, k.NextPeriod, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPeriod, k.NextPeriod},
		{k.ViewMonth, k.ViewQuarter, k.ViewYear},
		{k.NextTab, k.PrevTab},
		{k.Help, k.Quit},
	}
}
