package seed

import (
	"testing"
	"time"

	"tableflip.dev/cal/pkg/event"
)

func TestEvents(t *testing.T) {
	now := time.Date(2024, time.January, 31, 16, 20, 0, 0, time.Local)
	events := Events(now)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	want := []struct {
		id    string
		title string
		start time.Time
		end   time.Time
		color event.Color
	}{
		{"1", "Team Meeting", time.Date(2024, 1, 31, 10, 0, 0, 0, time.Local), time.Date(2024, 1, 31, 11, 0, 0, 0, time.Local), event.Blue},
		{"2", "Project Deadline", time.Date(2024, 2, 1, 14, 0, 0, 0, time.Local), time.Date(2024, 2, 1, 15, 0, 0, 0, time.Local), event.Red},
		{"3", "Client Call", time.Date(2024, 2, 7, 9, 0, 0, 0, time.Local), time.Date(2024, 2, 7, 10, 30, 0, 0, time.Local), event.Green},
	}
	for i, w := range want {
		e := events[i]
		if e.ID != w.id || e.Title != w.title || e.Color != w.color {
			t.Fatalf("event %d = %+v", i, e)
		}
		if !e.Start.Equal(w.start) || !e.End.Equal(w.end) {
			t.Fatalf("event %d spans %s..%s, want %s..%s", i, e.Start, e.End, w.start, w.end)
		}
		if err := e.Validate(); err != nil {
			t.Fatalf("seed event %d invalid: %v", i, err)
		}
	}
}

func TestEventsAreFresh(t *testing.T) {
	now := time.Now()
	a := Events(now)
	a[0].Title = "changed"
	if b := Events(now); b[0].Title != "Team Meeting" {
		t.Fatalf("seed data shared between calls")
	}
}
