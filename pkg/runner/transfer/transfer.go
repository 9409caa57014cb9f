// Package transfer moves events in and out of iCalendar files.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/ics"
)

// Export writes every event to Path, or to Out when Path is empty.
type Export struct {
	Service *app.Service
	Path    string

	Out io.Writer
	Now func() time.Time
}

func (x *Export) Do(ctx context.Context) error {
	if x.Service == nil {
		return errors.New("can not export, no service")
	}
	now := time.Now()
	if x.Now != nil {
		now = x.Now()
	}
	events := x.Service.List()

	if x.Path == "" {
		out := x.Out
		if out == nil {
			out = os.Stdout
		}
		return ics.Export(out, events, now)
	}

	path, err := homedir.Expand(x.Path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ics.Export(f, events, now); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "exported %d events to %s\n", len(events), path)
	return nil
}

// Import merges the events of an iCalendar file. Events whose id is already
// known replace the stored copy.
type Import struct {
	Service *app.Service
	Path    string

	Out io.Writer
}

func (m *Import) Do(ctx context.Context) error {
	if m.Service == nil {
		return errors.New("can not import, no service")
	}
	path, err := homedir.Expand(m.Path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	incoming, err := ics.Import(f)
	if err != nil {
		return err
	}

	merged, added, updated := Merge(m.Service.List(), incoming)
	if err := m.Service.Replace(ctx, merged); err != nil {
		return err
	}

	out := m.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "imported %d events: %d new, %d updated\n", len(incoming), added, updated)
	return nil
}

// Merge applies incoming onto current by id, keeping current's order and
// appending new events.
func Merge(current, incoming []*event.Event) (merged []*event.Event, added, updated int) {
	at := make(map[string]int, len(current))
	merged = make([]*event.Event, 0, len(current)+len(incoming))
	for _, e := range current {
		at[e.ID] = len(merged)
		merged = append(merged, e)
	}
	for _, e := range incoming {
		if i, ok := at[e.ID]; ok {
			merged[i] = e
			updated++
			continue
		}
		at[e.ID] = len(merged)
		merged = append(merged, e)
		added++
	}
	return merged, added, updated
}
