package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/printers"
)

type Add struct {
	Service *app.Service
	Form    *form.Form
	Input   form.Input
	ShowID  bool

	Out io.Writer
}

// Do validates the input, stores the event and prints the day it landed on.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Form == nil {
		n.Form = form.New(nil)
	}

	d, err := n.Form.Draft(n.Input)
	if err != nil {
		return err
	}
	e, err := n.Service.Add(ctx, d)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.NewLine()
	pp.More(e.Start, nil, bucket.ByDay(n.Service.List(), e.Start))
	return nil
}
