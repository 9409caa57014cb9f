// Package event defines the calendar event model shared by the store, the
// grid bucketing and the user facing surfaces.
package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event is a scheduled item. Start is strictly before End for every event
// that passed the form boundary.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       Color
	Importance  Importance
	Type        Type
}

// Draft carries every field of an Event except its identifier.
type Draft struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       Color
	Importance  Importance
	Type        Type
}

// New builds an event from a draft, filling defaults for missing enums.
func New(id string, d Draft) *Event {
	e := &Event{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Start:       d.Start,
		End:         d.End,
		Color:       d.Color,
		Importance:  d.Importance,
		Type:        d.Type,
	}
	e.normalize()
	return e
}

func (e *Event) normalize() {
	if e.Type == "" {
		e.Type = Other
	}
	if e.Importance == "" {
		e.Importance = Medium
	}
	if e.Color == "" {
		e.Color = e.Type.DefaultColor()
	}
}

// Draft returns the mutable fields of e.
func (e *Event) Draft() Draft {
	return Draft{
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		Color:       e.Color,
		Importance:  e.Importance,
		Type:        e.Type,
	}
}

// Clone returns a copy of e.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

// Equal reports whether both events hold the same values, comparing
// timestamps as instants.
func (e *Event) Equal(o *Event) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.ID == o.ID &&
		e.Title == o.Title &&
		e.Description == o.Description &&
		e.Start.Equal(o.Start) &&
		e.End.Equal(o.End) &&
		e.Color == o.Color &&
		e.Importance == o.Importance &&
		e.Type == o.Type
}

// Duration returns how long the event lasts.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

func (e *Event) String() string {
	return fmt.Sprintf("%s %s-%s %s",
		e.Start.Local().Format("Mon Jan 2"),
		e.Start.Local().Format("15:04"),
		e.End.Local().Format("15:04"),
		e.Title)
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	Color       *Color
	Importance  *Importance
	Type        *Type
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Start == nil && p.End == nil &&
		p.Color == nil && p.Importance == nil && p.Type == nil
}

// Apply merges the patch into e. The identifier is never changed.
func (p Patch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.Importance != nil {
		e.Importance = *p.Importance
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
}

// PatchFrom returns a patch that overwrites every mutable field with d.
func PatchFrom(d Draft) Patch {
	return Patch{
		Title:       &d.Title,
		Description: &d.Description,
		Start:       &d.Start,
		End:         &d.End,
		Color:       &d.Color,
		Importance:  &d.Importance,
		Type:        &d.Type,
	}
}

type wireEvent struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Start       string     `json:"start"`
	End         string     `json:"end"`
	Color       string     `json:"color"`
	Importance  Importance `json:"importance"`
	Type        Type       `json:"type"`
}

// MarshalJSON writes start and end as ISO-8601 strings.
func (e *Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEvent{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Start:       FormatTime(e.Start),
		End:         FormatTime(e.End),
		Color:       string(e.Color),
		Importance:  e.Importance,
		Type:        e.Type,
	})
}

// UnmarshalJSON parses the stored form back into local timestamps.
func (e *Event) UnmarshalJSON(b []byte) error {
	var w wireEvent
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	start, err := ParseTime(w.Start)
	if err != nil {
		return fmt.Errorf("event %q: start: %w", w.ID, err)
	}
	end, err := ParseTime(w.End)
	if err != nil {
		return fmt.Errorf("event %q: end: %w", w.ID, err)
	}
	*e = Event{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Start:       start,
		End:         end,
		Importance:  w.Importance,
		Type:        w.Type,
	}
	if w.Color != "" {
		// Unknown colors fall back to the type default rather than
		// rejecting the whole list.
		if c, err := ParseColor(w.Color); err == nil {
			e.Color = c
		}
	}
	e.normalize()
	return nil
}
