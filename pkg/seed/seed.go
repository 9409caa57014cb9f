// Package seed holds the example events a fresh calendar starts with.
package seed

import (
	"time"

	"tableflip.dev/cal/pkg/event"
)

// Events returns the three example events relative to now: a meeting
// today, a deadline tomorrow and a client call a week out.
func Events(now time.Time) []*event.Event {
	now = now.Local()
	at := func(days, hour, min int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day()+days, hour, min, 0, 0, time.Local)
	}
	return []*event.Event{
		{
			ID:          "1",
			Title:       "Team Meeting",
			Description: "Weekly team sync",
			Start:       at(0, 10, 0),
			End:         at(0, 11, 0),
			Color:       event.Blue,
			Importance:  event.High,
			Type:        event.Meeting,
		},
		{
			ID:          "2",
			Title:       "Project Deadline",
			Description: "Submit final report",
			Start:       at(1, 14, 0),
			End:         at(1, 15, 0),
			Color:       event.Red,
			Importance:  event.High,
			Type:        event.Work,
		},
		{
			ID:          "3",
			Title:       "Client Call",
			Description: "Discuss project requirements",
			Start:       at(7, 9, 0),
			End:         at(7, 10, 30),
			Color:       event.Green,
			Importance:  event.Medium,
			Type:        event.Meeting,
		},
	}
}
