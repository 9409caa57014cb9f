package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tableflip.dev/cal/pkg/event"
)

func TestExportImportRoundTrip(t *testing.T) {
	start := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)
	events := []*event.Event{
		event.New("a1", event.Draft{
			Title:       "Standup, daily",
			Description: "sync; notes",
			Start:       start,
			End:         start.Add(30 * time.Minute),
			Color:       event.Green,
			Importance:  event.High,
			Type:        event.Meeting,
		}),
		event.New("b2", event.Draft{
			Title:      "Dentist",
			Start:      start.AddDate(0, 0, 2),
			End:        start.AddDate(0, 0, 2).Add(time.Hour),
			Importance: event.Low,
			Type:       event.Personal,
		}),
	}

	var buf bytes.Buffer
	if err := Export(&buf, events, start); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Fatalf("no events in output:\n%s", buf.String())
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("imported %d events, want %d", len(got), len(events))
	}
	for i := range events {
		if !got[i].Equal(events[i]) {
			t.Fatalf("event %d:\n got %+v\nwant %+v", i, got[i], events[i])
		}
	}
}

func TestImportSkipsInvalid(t *testing.T) {
	body := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:ok",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240110T090000Z",
		"SUMMARY:No end",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:backwards",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240110T100000Z",
		"DTEND:20240110T090000Z",
		"SUMMARY:Backwards",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	got, err := Import(strings.NewReader(body))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("expected only the valid event, got %d", len(got))
	}
	if got[0].End.Sub(got[0].Start) != time.Hour {
		t.Fatalf("missing end should default to one hour")
	}
	if got[0].Importance != event.Medium || got[0].Type != event.Other {
		t.Fatalf("defaults not applied: %+v", got[0])
	}
}
