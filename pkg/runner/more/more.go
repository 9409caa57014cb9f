// Package more prints every event behind a truncated cell.
package more

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/grid"
	"tableflip.dev/cal/pkg/printers"
)

type More struct {
	Service *app.Service
	Day     time.Time
	// Hour narrows the listing to one hour slot of Day.
	Hour   *int
	ShowID bool

	Out io.Writer
}

func (m *More) Do(ctx context.Context) error {
	if m.Service == nil {
		return errors.New("can not list, no service")
	}
	all := m.Service.List()

	events := bucket.ByDay(all, m.Day)
	if m.Hour != nil {
		if *m.Hour < 0 || *m.Hour >= grid.HoursPerDay {
			return fmt.Errorf("hour %d out of range 0-%d", *m.Hour, grid.HoursPerDay-1)
		}
		events = bucket.ByDayHour(all, m.Day, *m.Hour)
	}

	pp := printers.PrettyPrint{Out: m.Out, ShowID: m.ShowID}
	pp.NewLine()
	pp.More(m.Day, m.Hour, events)
	return nil
}
