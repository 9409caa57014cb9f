// Package agenda prints upcoming events.
package agenda

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/printers"
	"tableflip.dev/cal/pkg/timeutil"
)

type Agenda struct {
	Service *app.Service
	// Window is a duration such as 3d or 1w2d.
	Window string
	ShowID bool

	Out io.Writer
	Now func() time.Time
}

func (a *Agenda) Do(ctx context.Context) error {
	if a.Service == nil {
		return errors.New("can not show agenda, no service")
	}
	window, label, err := timeutil.ParseDuration(a.Window, timeutil.DefaultAgenda)
	if err != nil {
		return err
	}
	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}

	result := a.Service.Agenda(now, now.Add(window))
	pp := printers.PrettyPrint{Out: a.Out, ShowID: a.ShowID, Now: a.Now}
	pp.NewLine()
	pp.Agenda(result, label)
	return nil
}
