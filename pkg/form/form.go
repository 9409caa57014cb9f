// Package form turns user supplied strings into event drafts and patches.
// It is the only place start/end ordering is enforced; nothing invalid is
// handed to the store.
package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/timeutil"
)

// Input is the raw form. Empty fields are unset, except that an edit clears
// Title or Description when ClearTitle or ClearDescription is set.
type Input struct {
	Title       string
	Description string

	ClearTitle       bool
	ClearDescription bool
	// Start and End are absolute times.
	Start string
	End   string
	// At and For are the alternative start plus length form.
	At  string
	For string

	Color      string
	Importance string
	Type       string

	// Day preselects the date of a new event, as when adding from a
	// selected calendar cell.
	Day *time.Time
}

// Form parses inputs relative to a clock.
type Form struct {
	now  func() time.Time
	when *when.Parser
}

// New returns a Form. A nil now uses time.Now.
func New(now func() time.Time) *Form {
	if now == nil {
		now = time.Now
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Form{now: now, when: w}
}

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-1-2 15:04",
	"2006-01-02",
	"2006-1-2",
}

// ParseTime reads an absolute or natural language time ("tomorrow 3pm",
// "next friday at 10am").
func (f *Form) ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	r, err := f.when.Parse(s, f.now())
	if err != nil {
		return time.Time{}, err
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as a time", s)
	}
	return r.Time.Local(), nil
}

// ParseDay reads a date and returns midnight of that day.
func (f *Form) ParseDay(s string) (time.Time, error) {
	t, err := f.ParseTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// DefaultRange is the span a new event starts with: 09:00 to 10:00 on the
// selected day, or from today 09:00 to tomorrow 10:00 when no day is
// selected.
func DefaultRange(day *time.Time, now time.Time) (time.Time, time.Time) {
	base, endDay := now, now.AddDate(0, 0, 1)
	if day != nil {
		base, endDay = *day, *day
	}
	start := time.Date(base.Year(), base.Month(), base.Day(), 9, 0, 0, 0, time.Local)
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 10, 0, 0, 0, time.Local)
	return start, end
}

// Draft validates in and builds the event to add.
func (f *Form) Draft(in Input) (event.Draft, error) {
	d := event.Draft{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
	}

	start, end, err := f.span(in, nil)
	if err != nil {
		return event.Draft{}, err
	}
	if start.IsZero() {
		defStart, defEnd := DefaultRange(in.Day, f.now())
		start = defStart
		if end.IsZero() {
			end = defEnd
		}
	}
	d.Start, d.End = start, end

	if err := applyEnums(in, &d.Color, &d.Importance, &d.Type); err != nil {
		return event.Draft{}, err
	}
	if err := d.Validate(); err != nil {
		return event.Draft{}, err
	}
	return d, nil
}

// Edit validates in against the current state of e and returns the patch to
// apply. The merged event is checked, so moving only the start past the
// existing end is rejected.
func (f *Form) Edit(e *event.Event, in Input) (event.Patch, error) {
	var p event.Patch
	if v := strings.TrimSpace(in.Title); v != "" || in.ClearTitle {
		p.Title = &v
	}
	if v := strings.TrimSpace(in.Description); v != "" || in.ClearDescription {
		p.Description = &v
	}

	start, end, err := f.span(in, e)
	if err != nil {
		return event.Patch{}, err
	}
	if !start.IsZero() {
		p.Start = &start
	}
	if !end.IsZero() {
		p.End = &end
	}

	var (
		color      event.Color
		importance event.Importance
		typ        event.Type
	)
	if err := applyEnums(in, &color, &importance, &typ); err != nil {
		return event.Patch{}, err
	}
	if color != "" {
		p.Color = &color
	}
	if importance != "" {
		p.Importance = &importance
	}
	if typ != "" {
		p.Type = &typ
	}

	merged := e.Clone()
	p.Apply(merged)
	if err := merged.Validate(); err != nil {
		return event.Patch{}, err
	}
	return p, nil
}

// span resolves the start/end fields. Unset fields come back zero. When
// only a new start is given for an existing event, its length is kept.
func (f *Form) span(in Input, existing *event.Event) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	startRaw := in.Start
	if startRaw == "" {
		startRaw = in.At
	}
	if startRaw != "" {
		if start, err = f.ParseTime(startRaw); err != nil {
			return start, end, &event.ValidationError{Field: "start", Reason: err.Error()}
		}
	}

	switch {
	case in.End != "":
		if end, err = f.ParseTime(in.End); err != nil {
			return start, end, &event.ValidationError{Field: "end", Reason: err.Error()}
		}
	case in.For != "":
		length, _, err := timeutil.ParseDuration(in.For, timeutil.DefaultLength)
		if err != nil {
			return start, end, &event.ValidationError{Field: "for", Reason: err.Error()}
		}
		from := start
		if from.IsZero() {
			if existing != nil {
				from = existing.Start
			} else {
				from, _ = DefaultRange(in.Day, f.now())
				start = from
			}
		}
		end = from.Add(length)
	case !start.IsZero() && existing != nil:
		end = start.Add(existing.Duration())
	case !start.IsZero():
		length, _, _ := timeutil.ParseDuration("", timeutil.DefaultLength)
		end = start.Add(length)
	}
	return start, end, nil
}

func applyEnums(in Input, c *event.Color, i *event.Importance, t *event.Type) error {
	var err error
	if in.Type != "" {
		if *t, err = event.ParseType(in.Type); err != nil {
			return &event.ValidationError{Field: "type", Reason: err.Error()}
		}
	}
	if in.Importance != "" {
		if *i, err = event.ParseImportance(in.Importance); err != nil {
			return &event.ValidationError{Field: "importance", Reason: err.Error()}
		}
	}
	if in.Color != "" {
		if *c, err = event.ParseColor(in.Color); err != nil {
			return &event.ValidationError{Field: "color", Reason: err.Error()}
		}
	}
	return nil
}
