package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/cal/pkg/event"
)

// PrettyPrint renders the calendar views as colored text.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out    io.Writer
	ShowID bool
	// Now marks today in the grids; defaults to time.Now.
	Now func() time.Time
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now == nil {
		return time.Now()
	}
	return pp.Now()
}

var (
	spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))

	palette = map[event.Color]*color.Color{
		event.Blue:   color.New(color.FgBlue),
		event.Green:  color.New(color.FgGreen),
		event.Pink:   color.New(color.FgHiMagenta),
		event.Yellow: color.New(color.FgYellow),
		event.Gray:   color.New(color.FgWhite, color.Faint),
		event.Red:    color.New(color.FgRed),
	}
)

// ColorFor returns the printer for an event color.
func ColorFor(c event.Color) *color.Color {
	if p, ok := palette[c]; ok {
		return p
	}
	return palette[event.Gray]
}

// ImportanceMark is the one character marker printed before a title.
func ImportanceMark(i event.Importance) string {
	switch i {
	case event.High:
		return "!"
	case event.Low:
		return "."
	default:
		return " "
	}
}

// chip renders a short, colored event label at most width cells wide.
func chip(e *event.Event, width int) string {
	label := e.Title
	if label == "" {
		label = "(untitled)"
	}
	label = truncate.StringWithTail(label, uint(width), "…")
	return ColorFor(e.Color).Sprint(pad(label, width))
}

func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " event")
	default:
		_, _ = c.Fprintln(pp.out(), " events")
	}
}

// Events prints one line per event: time range, importance, title and
// description.
func (pp *PrettyPrint) Events(events ...*event.Event) {
	w := pp.out()
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)
	for _, e := range events {
		if pp.ShowID {
			_, _ = y.Fprint(w, e.ID)
			_, _ = y.Fprint(w, strings.Repeat(" ", max(1, len(spacing)-len(e.ID))))
		}
		_, _ = fmt.Fprintf(w, "%s %s ", span(e), ImportanceMark(e.Importance))
		_, _ = ColorFor(e.Color).Fprint(w, e.Title)
		_, _ = faint.Fprintf(w, " [%s]", e.Type)
		if e.Description != "" {
			_, _ = faint.Fprintf(w, " %s", e.Description)
		}
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w)
}

// span formats the time range, adding the end date when it differs.
func span(e *event.Event) string {
	s, en := e.Start.Local(), e.End.Local()
	if s.Year() == en.Year() && s.YearDay() == en.YearDay() {
		return fmt.Sprintf("%s-%s", s.Format("15:04"), en.Format("15:04"))
	}
	return fmt.Sprintf("%s-%s", s.Format("15:04"), en.Format("Jan 2 15:04"))
}
