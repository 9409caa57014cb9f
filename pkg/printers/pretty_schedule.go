package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/grid"
	"tableflip.dev/cal/pkg/view"
)

const hourWidth = len("12 AM  ")

// Week prints the seven days of ref's week, each with its busy hours.
func (pp *PrettyPrint) Week(ref time.Time, events []*event.Event, limit int) {
	w := pp.out()
	now := pp.now()
	pp.Title(view.Title(view.Week, ref))

	dayStyle := color.New(color.Bold)
	today := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	for _, d := range grid.WeekGrid(ref) {
		p := dayStyle
		if grid.SameDay(d, now) {
			p = today
		}
		_, _ = p.Fprintln(w, d.Format("Mon Jan 2"))

		busy := false
		for _, slot := range grid.DayHours(d) {
			o := bucket.Truncate(bucket.ByDayHour(events, slot.Date, slot.Hour), limit)
			if len(o.Shown) == 0 {
				continue
			}
			busy = true
			pp.hourRow(slot.Hour, o)
		}
		if !busy {
			_, _ = faint.Fprintln(w, "  none")
		}
	}
	_, _ = fmt.Fprintln(w)
}

// Day prints all 24 hours of ref's day with their events.
func (pp *PrettyPrint) Day(ref time.Time, events []*event.Event, limit int) {
	w := pp.out()
	pp.Title(view.Title(view.Day, ref))

	for _, slot := range grid.DayHours(ref) {
		o := bucket.Truncate(bucket.ByDayHour(events, slot.Date, slot.Hour), limit)
		pp.hourRow(slot.Hour, o)
	}
	_, _ = fmt.Fprintln(w)
}

func (pp *PrettyPrint) hourRow(hour int, o bucket.Overflow) {
	w := pp.out()
	label := color.New(color.Faint)
	_, _ = label.Fprint(w, "  "+pad(grid.HourLabel(hour), hourWidth))
	for i, e := range o.Shown {
		if i > 0 {
			_, _ = fmt.Fprint(w, "  ")
		}
		_, _ = fmt.Fprintf(w, "%s ", e.Start.Local().Format("15:04"))
		_, _ = ColorFor(e.Color).Fprint(w, e.Title)
	}
	if o.Hidden > 0 {
		_, _ = label.Fprint(w, "  "+o.Label())
	}
	_, _ = fmt.Fprintln(w)
}

// More prints the full listing behind a "+N more" cell.
func (pp *PrettyPrint) More(day time.Time, hour *int, events []*event.Event) {
	title := day.Format("Monday, January 2, 2006")
	if hour != nil {
		title = fmt.Sprintf("%s, %s", title, grid.HourLabel(*hour))
	}
	pp.TitleWithCount(title, len(events))
	pp.Events(events...)
}

// Agenda prints upcoming events grouped by day.
func (pp *PrettyPrint) Agenda(result app.AgendaResult, label string) {
	pp.TitleWithCount(fmt.Sprintf("Next %s", label), result.Total)
	if len(result.Days) == 0 {
		pp.Events()
		return
	}
	for _, d := range result.Days {
		_, _ = color.New(color.Bold).Fprintln(pp.out(), d.Day.Format("Mon Jan 2"))
		pp.Events(d.Events...)
	}
}
