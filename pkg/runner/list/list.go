// Package list writes events as a table, JSON or YAML.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/event"
)

type List struct {
	Service *app.Service
	// On limits the listing to one day, or its month when Month is set.
	On     *time.Time
	Month  bool
	Format string

	Out io.Writer
}

// record is the YAML shape of an event; it mirrors the stored JSON.
type record struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	Color       string `yaml:"color"`
	Importance  string `yaml:"importance"`
	Type        string `yaml:"type"`
}

func (l *List) out() io.Writer {
	if l.Out == nil {
		return color.Output
	}
	return l.Out
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not list, no service")
	}
	events := l.filtered(l.Service.List())

	switch l.Format {
	case options.FormatJSON:
		if events == nil {
			events = []*event.Event{}
		}
		b, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(l.out(), string(b))
		return err

	case options.FormatYAML:
		records := make([]record, 0, len(events))
		for _, e := range events {
			records = append(records, record{
				ID:          e.ID,
				Title:       e.Title,
				Description: e.Description,
				Start:       event.FormatTime(e.Start),
				End:         event.FormatTime(e.End),
				Color:       string(e.Color),
				Importance:  string(e.Importance),
				Type:        string(e.Type),
			})
		}
		enc := yaml.NewEncoder(l.out())
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()

	default:
		l.table(events)
		return nil
	}
}

func (l *List) filtered(all []*event.Event) []*event.Event {
	switch {
	case l.On == nil:
		return all
	case l.Month:
		return bucket.ByMonth(all, l.On.Year(), l.On.Month())
	default:
		return bucket.ByDay(all, *l.On)
	}
}

func (l *List) table(events []*event.Event) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(
		bold.Sprint("ID"),
		bold.Sprint("DATE"),
		bold.Sprint("TIME"),
		bold.Sprint("TITLE"),
		bold.Sprint("TYPE"),
		bold.Sprint("IMPORTANCE"),
		bold.Sprint("COLOR"),
	)
	for _, e := range events {
		s, en := e.Start.Local(), e.End.Local()
		tbl.AddRow(
			e.ID,
			s.Format("Mon Jan 2 2006"),
			fmt.Sprintf("%s-%s", s.Format("15:04"), en.Format("15:04")),
			e.Title,
			string(e.Type),
			string(e.Importance),
			string(e.Color),
		)
	}
	_, _ = fmt.Fprintln(l.out(), tbl)
}
