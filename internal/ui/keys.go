package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit           key.Binding
	Help           key.Binding
	CycleTheme     key.Binding
	ToggleWarnings key.Binding
	Escape         key.Binding

	// Slider
	ArrowLeft      key.Binding
	ArrowRight     key.Binding
	Prev           key.Binding
	Next           key.Binding
	First          key.Binding
	Last           key.Binding
	Dot            key.Binding
	ToggleAutoplay key.Binding
	Open           key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleWarnings: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Toggle warnings"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "Close"),
		),

		// Slider
		ArrowLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Arrow prev"),
		),
		ArrowRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Arrow next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "p"),
			key.WithHelp("h/p", "Previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "n"),
			key.WithHelp("l/n", "Next page"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First page"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last page"),
		),
		Dot: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Jump to dot"),
		),
		ToggleAutoplay: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Toggle autoplay"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open slide"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Paging
		{k.Prev, k.Next, k.ArrowLeft, k.ArrowRight},
		{k.First, k.Last, k.Dot, k.Open},
		// General
		{k.ToggleAutoplay, k.ToggleWarnings, k.CycleTheme, k.Help, k.Quit},
	}
}
