package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/printers"
)

type Edit struct {
	Service *app.Service
	Form    *form.Form
	ID      string
	Input   form.Input
	ShowID  bool

	Out io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.Form == nil {
		n.Form = form.New(nil)
	}

	cur, err := n.Service.Get(n.ID)
	if err != nil {
		return err
	}
	p, err := n.Form.Edit(cur, n.Input)
	if err != nil {
		return err
	}
	if p.IsEmpty() {
		return errors.New("nothing to change, set at least one field")
	}
	e, err := n.Service.Update(ctx, n.ID, p)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Updated")
	pp.Events(e)
	return nil
}
