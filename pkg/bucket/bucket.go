// Package bucket assigns events to the cells of a calendar grid.
//
// Every function keeps the order events were given in and never mutates
// its input.
package bucket

import (
	"fmt"
	"time"

	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/grid"
)

// ByDay returns the events starting on date's local calendar day.
func ByDay(events []*event.Event, date time.Time) []*event.Event {
	var out []*event.Event
	for _, e := range events {
		if grid.SameDay(e.Start, date) {
			out = append(out, e)
		}
	}
	return out
}

// ByDayHour returns the events starting during the given hour of date.
func ByDayHour(events []*event.Event, date time.Time, hour int) []*event.Event {
	var out []*event.Event
	for _, e := range events {
		if grid.SameDay(e.Start, date) && e.Start.Local().Hour() == hour {
			out = append(out, e)
		}
	}
	return out
}

// ByMonth returns the events starting in the given month.
func ByMonth(events []*event.Event, year int, month time.Month) []*event.Event {
	var out []*event.Event
	for _, e := range events {
		s := e.Start.Local()
		if s.Year() == year && s.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// HighlightDays returns the days of the month that have at least one event.
func HighlightDays(events []*event.Event, year int, month time.Month) map[int]bool {
	days := make(map[int]bool)
	for _, e := range ByMonth(events, year, month) {
		days[e.Start.Local().Day()] = true
	}
	return days
}

// Overflow is a truncated bucket.
type Overflow struct {
	Shown  []*event.Event
	Hidden int
}

// Truncate keeps the first limit events. A limit of zero or less keeps all.
func Truncate(events []*event.Event, limit int) Overflow {
	if limit <= 0 || len(events) <= limit {
		return Overflow{Shown: events}
	}
	return Overflow{Shown: events[:limit], Hidden: len(events) - limit}
}

// Label returns the "+N more" marker, or "" when nothing was hidden.
func (o Overflow) Label() string {
	if o.Hidden <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", o.Hidden)
}

// Limits caps how many events each view renders per cell.
type Limits struct {
	Month int
	Week  int
	Day   int
}

// DefaultLimits matches the density of the month, week and day layouts.
func DefaultLimits() Limits {
	return Limits{Month: 2, Week: 3, Day: 0}
}
