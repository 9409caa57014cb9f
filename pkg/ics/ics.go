// Package ics converts events to and from iCalendar (RFC 5545).
package ics

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"tableflip.dev/cal/pkg/event"
)

const productID = "-//tableflip.dev//cal//EN"

// Export writes events as a published calendar.
func Export(w io.Writer, events []*event.Event, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName("cal")

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(stamp.UTC())
		ve.SetStartAt(e.Start.UTC())
		ve.SetEndAt(e.End.UTC())
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		ve.SetColor(string(e.Color))
		ve.AddCategory(string(e.Type))
		ve.SetProperty(ical.ComponentPropertyPriority, strconv.Itoa(priority(e.Importance)))
	}
	return cal.SerializeTo(w)
}

// Import reads every VEVENT in r. Events without a usable time range are
// skipped and logged.
func Import(r io.Reader) ([]*event.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("ics: parse: %w", err)
	}

	var out []*event.Event
	for _, ve := range cal.Events() {
		e, err := fromVEvent(ve)
		if err != nil {
			slog.Warn("ics: skipping event", "uid", ve.Id(), "error", err)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func fromVEvent(ve *ical.VEvent) (*event.Event, error) {
	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		if !errors.Is(err, ical.ErrorPropertyNotFound) {
			return nil, fmt.Errorf("end: %w", err)
		}
		end = start.Add(time.Hour)
	}

	id := ve.Id()
	if id == "" {
		id = uuid.NewString()
	}

	d := event.Draft{
		Title:       text(ve, ical.ComponentPropertySummary),
		Description: text(ve, ical.ComponentPropertyDescription),
		Start:       start.Local(),
		End:         end.Local(),
		Importance:  importance(text(ve, ical.ComponentPropertyPriority)),
	}
	if t, err := event.ParseType(firstCategory(text(ve, ical.ComponentPropertyCategories))); err == nil {
		d.Type = t
	}
	if c, err := event.ParseColor(text(ve, ical.ComponentPropertyColor)); err == nil {
		d.Color = c
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return event.New(id, d), nil
}

func text(ve *ical.VEvent, p ical.ComponentProperty) string {
	prop := ve.GetProperty(p)
	if prop == nil {
		return ""
	}
	return ical.FromText(prop.Value)
}

func firstCategory(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return first
}

// priority maps importance onto the RFC 5545 scale where 1 is highest.
func priority(i event.Importance) int {
	switch i {
	case event.High:
		return 1
	case event.Low:
		return 9
	default:
		return 5
	}
}

func importance(v string) event.Importance {
	p, err := strconv.Atoi(strings.TrimSpace(v))
	switch {
	case err != nil || p == 0:
		return event.Medium
	case p <= 4:
		return event.High
	case p == 5:
		return event.Medium
	default:
		return event.Low
	}
}
