package tui

import (
	"github.com/charmbracelet/bubbles/v2/key"
)

type keyMap struct {
	Year    key.Binding
	Month   key.Binding
	Week    key.Binding
	Day     key.Binding
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Up      key.Binding
	Down    key.Binding
	DayPrev key.Binding
	DayNext key.Binding
	Open    key.Binding
	Close   key.Binding
	Add     key.Binding
	Delete  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Year:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		Month:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Week:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
		Day:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "select up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "select down")),
		DayPrev: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("⇧←/H", "select previous day")),
		DayNext: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("⇧→/L", "select next day")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Open, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Year, k.Month, k.Week, k.Day},
		{k.Prev, k.Next, k.Today},
		{k.Up, k.Down, k.DayPrev, k.DayNext, k.Open, k.Close},
		{k.Add, k.Delete, k.Help, k.Quit},
	}
}
