package app

import (
	"sort"
	"time"

	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/grid"
)

// AgendaDay groups the events starting on one day.
type AgendaDay struct {
	Day    time.Time
	Events []*event.Event
}

// AgendaResult lists the events starting in [Since, Until), grouped by day.
type AgendaResult struct {
	Since time.Time
	Until time.Time
	Days  []AgendaDay
	Total int
}

// Agenda returns the events starting between the provided bounds, earliest
// first.
func (s *Service) Agenda(since, until time.Time) AgendaResult {
	if since.After(until) {
		since, until = until, since
	}
	var hits []*event.Event
	for _, e := range s.List() {
		if e.Start.Before(since) || !e.Start.Before(until) {
			continue
		}
		hits = append(hits, e)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Start.Before(hits[j].Start)
	})

	result := AgendaResult{Since: since, Until: until, Total: len(hits)}
	for _, e := range hits {
		day := grid.StartOfDay(e.Start.Local())
		if n := len(result.Days); n > 0 && result.Days[n-1].Day.Equal(day) {
			result.Days[n-1].Events = append(result.Days[n-1].Events, e)
			continue
		}
		result.Days = append(result.Days, AgendaDay{Day: day, Events: []*event.Event{e}})
	}
	return result
}
