// Package ui starts the interactive calendar.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/store"
	"tableflip.dev/cal/pkg/tui"
)

type UI struct {
	Service *app.Service
	// Persistence is watched for writes from other processes when the
	// backend supports it.
	Persistence store.Persistence
	Limits      bucket.Limits
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not start ui, no service")
	}
	opts := []tui.Option{tui.WithLimits(d.Limits)}
	if w, ok := d.Persistence.(store.Watcher); ok {
		opts = append(opts, tui.WithWatcher(w))
	}
	return tui.Run(ctx, d.Service, opts...)
}
