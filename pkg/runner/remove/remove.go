// Package remove deletes events by id.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"tableflip.dev/cal/pkg/app"
)

type Remove struct {
	Service *app.Service
	IDs     []string

	Out io.Writer
}

// Do deletes each id. Unknown ids are skipped.
func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not delete, no service")
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	faint := color.New(color.Faint)

	for _, id := range r.IDs {
		e, err := r.Service.Get(id)
		if errors.Is(err, app.ErrNotFound) {
			slog.Info("delete: unknown id", "id", id)
			_, _ = faint.Fprintf(out, "%s not found\n", id)
			continue
		}
		if err := r.Service.Delete(ctx, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "deleted %s ", id)
		_, _ = faint.Fprintln(out, e.Title)
	}
	return nil
}
