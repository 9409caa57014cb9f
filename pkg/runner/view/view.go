// Package view prints one calendar granularity around a reference date.
package view

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/printers"
	calview "tableflip.dev/cal/pkg/view"
)

type View struct {
	Service     *app.Service
	Granularity calview.Granularity
	On          time.Time
	Limits      bucket.Limits
	ShowID      bool

	Out io.Writer
	Now func() time.Time
}

func (v *View) Do(ctx context.Context) error {
	if v.Service == nil {
		return errors.New("can not view, no service")
	}
	pp := printers.PrettyPrint{Out: v.Out, ShowID: v.ShowID, Now: v.Now}
	events := v.Service.List()

	pp.NewLine()
	switch v.Granularity {
	case calview.Year:
		pp.Year(v.On, events)
	case calview.Week:
		pp.Week(v.On, events, v.Limits.Week)
	case calview.Day:
		pp.Day(v.On, events, v.Limits.Day)
	default:
		pp.Month(v.On, events, v.Limits.Month)
	}
	return nil
}
