package bucket

import (
	"fmt"
	"testing"
	"time"

	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/grid"
)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.Local)
}

func ev(id string, start time.Time, d time.Duration) *event.Event {
	return event.New(id, event.Draft{Title: id, Start: start, End: start.Add(d)})
}

func TestScenarioStandup(t *testing.T) {
	standup := ev("standup", at(2024, time.January, 10, 9, 0), 30*time.Minute)
	events := []*event.Event{standup}

	got := ByDay(events, at(2024, time.January, 10, 0, 0))
	if len(got) != 1 || got[0] != standup {
		t.Fatalf("ByDay(Jan 10) = %v, want [standup]", got)
	}
	if got := ByDay(events, at(2024, time.January, 11, 0, 0)); len(got) != 0 {
		t.Fatalf("ByDay(Jan 11) = %v, want none", got)
	}
	if got := ByDayHour(events, at(2024, time.January, 10, 0, 0), 9); len(got) != 1 {
		t.Fatalf("ByDayHour(9) = %v, want [standup]", got)
	}
	if got := ByDayHour(events, at(2024, time.January, 10, 0, 0), 10); len(got) != 0 {
		t.Fatalf("ByDayHour(10) = %v, want none", got)
	}
}

func TestByDayKeepsOrder(t *testing.T) {
	events := []*event.Event{
		ev("late", at(2024, time.January, 10, 17, 0), time.Hour),
		ev("other-day", at(2024, time.January, 11, 8, 0), time.Hour),
		ev("early", at(2024, time.January, 10, 8, 0), time.Hour),
	}
	got := ByDay(events, at(2024, time.January, 10, 12, 0))
	if len(got) != 2 || got[0].ID != "late" || got[1].ID != "early" {
		t.Fatalf("ByDay order = %v", ids(got))
	}
}

func TestBucketsCoverMonthGrid(t *testing.T) {
	cells := grid.MonthGrid(at(2024, time.January, 1, 0, 0))
	first := cells[0].Date
	last := cells[len(cells)-1].Date

	var events []*event.Event
	for i := 0; i < 120; i++ {
		start := first.AddDate(0, 0, i%45).Add(time.Duration(i%24) * time.Hour)
		events = append(events, ev(fmt.Sprintf("e%d", i), start, time.Hour))
	}

	seen := make(map[string]int)
	for _, c := range cells {
		for _, e := range ByDay(events, c.Date) {
			seen[e.ID]++
		}
	}
	for _, e := range events {
		inSpan := !e.Start.Before(first) && e.Start.Before(last.AddDate(0, 0, 1))
		switch {
		case inSpan && seen[e.ID] != 1:
			t.Fatalf("%s starting %s bucketed %d times", e.ID, e.Start, seen[e.ID])
		case !inSpan && seen[e.ID] != 0:
			t.Fatalf("%s outside the grid bucketed %d times", e.ID, seen[e.ID])
		}
	}
}

func TestByMonthAndHighlight(t *testing.T) {
	events := []*event.Event{
		ev("a", at(2024, time.March, 5, 9, 0), time.Hour),
		ev("b", at(2024, time.March, 20, 9, 0), time.Hour),
		ev("c", at(2023, time.March, 7, 9, 0), time.Hour),
		ev("d", at(2024, time.April, 5, 9, 0), time.Hour),
	}
	got := ByMonth(events, 2024, time.March)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("ByMonth = %v", ids(got))
	}

	days := HighlightDays(events, 2024, time.March)
	if !days[5] || !days[20] {
		t.Fatalf("expected 5 and 20 highlighted: %v", days)
	}
	// Day 7 only has an event in another year.
	if days[7] {
		t.Fatalf("day 7 highlighted from a different year")
	}
	if len(days) != 2 {
		t.Fatalf("highlighted %v", days)
	}
}

func TestTruncate(t *testing.T) {
	var events []*event.Event
	for i := 0; i < 5; i++ {
		events = append(events, ev(fmt.Sprintf("e%d", i), at(2024, time.January, 10, 9+i, 0), time.Hour))
	}

	o := Truncate(events, 2)
	if len(o.Shown) != 2 || o.Shown[0].ID != "e0" || o.Shown[1].ID != "e1" {
		t.Fatalf("shown = %v", ids(o.Shown))
	}
	if o.Label() != "+3 more" {
		t.Fatalf("label = %q", o.Label())
	}
	if len(ByDay(events, at(2024, time.January, 10, 0, 0))) != 5 {
		t.Fatalf("full listing should keep all five events")
	}

	if o := Truncate(events, 0); len(o.Shown) != 5 || o.Label() != "" {
		t.Fatalf("unlimited truncate = %d shown, label %q", len(o.Shown), o.Label())
	}
	if o := Truncate(events, 5); o.Hidden != 0 || o.Label() != "" {
		t.Fatalf("exact fit should hide nothing: %+v", o)
	}
	if o := Truncate(nil, 2); len(o.Shown) != 0 || o.Hidden != 0 {
		t.Fatalf("empty truncate = %+v", o)
	}
}

func ids(events []*event.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}
