package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/cal/pkg/event"
)

// Theme centralizes Lip Gloss styles for the calendar UI.
type Theme struct {
	Footer   FooterTheme
	Calendar CalendarTheme
	Listing  ListingTheme
	// Chips styles event labels by their color tag.
	Chips map[event.Color]lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and help lines.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// CalendarTheme styles the grids.
type CalendarTheme struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Day       lipgloss.Style
	OtherDay  lipgloss.Style
	Today     lipgloss.Style
	Selected  lipgloss.Style
	Busy      lipgloss.Style
	Hour      lipgloss.Style
	More      lipgloss.Style
	MonthName lipgloss.Style
}

// ListingTheme styles the overlay listing every event of a cell.
type ListingTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Cursor lipgloss.Style
	Faint  lipgloss.Style
}

// base hex values of the event palette; chips use a softened tint.
var palette = map[event.Color]string{
	event.Blue:   "#3b82f6",
	event.Green:  "#22c55e",
	event.Pink:   "#ec4899",
	event.Yellow: "#eab308",
	event.Gray:   "#9ca3af",
	event.Red:    "#ef4444",
}

// Tint returns the foreground used for a color tag.
func Tint(c event.Color) colorful.Color {
	hex, ok := palette[c]
	if !ok {
		hex = palette[event.Gray]
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 0.6, G: 0.6, B: 0.6}
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return col.BlendLab(white, 0.15).Clamped()
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	chips := make(map[event.Color]lipgloss.Style, len(palette))
	for _, c := range event.AllColors() {
		chips[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(Tint(c).Hex()))
	}

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Calendar: CalendarTheme{
			Title:     lipgloss.NewStyle().Bold(true).Underline(true),
			Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
			Day:       lipgloss.NewStyle(),
			OtherDay:  lipgloss.NewStyle().Faint(true),
			Today:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Selected:  lipgloss.NewStyle().Reverse(true),
			Busy:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
			Hour:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			More:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			MonthName: lipgloss.NewStyle().Italic(true),
		},
		Listing: ListingTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:  lipgloss.NewStyle().Bold(true),
			Cursor: lipgloss.NewStyle().Reverse(true),
			Faint:  lipgloss.NewStyle().Faint(true),
		},
		Chips: chips,
	}
}

// Chip returns the style of an event label.
func (t Theme) Chip(c event.Color) lipgloss.Style {
	if s, ok := t.Chips[c]; ok {
		return s
	}
	return t.Chips[event.Gray]
}
