package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/config"
	"tableflip.dev/cal/pkg/store"
)

var (
	output  = &base.OutputOptions{}
	globals = &options.GlobalOptions{}

	// cfg is loaded before any subcommand runs.
	cfg = config.Default()
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cal",
		Short: base.Wrap80("A local-first calendar for the terminal: month, week, day and year views over events kept on disk."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&output.JSON, "json", false,
		"Output errors as JSON.")
	options.AddGlobalArgs(cmd, globals)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addView(topLevel)
	addMore(topLevel)
	addList(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addAgenda(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addKey(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// setup loads the configuration and installs the logger.
func setup() error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	level := c.LogLevel
	if globals.LogLevel != "" {
		if _, err := config.ParseLevel(globals.LogLevel); err != nil {
			return err
		}
		level = globals.LogLevel
	}
	slog.SetDefault(config.NewLogger(os.Stderr, level))
	cfg = c
	return nil
}

// openStore returns the configured backend, or a fresh in-memory one for
// --ephemeral runs.
func openStore(ctx context.Context) (store.Persistence, error) {
	if globals.Ephemeral {
		return store.NewMemory(), nil
	}
	p, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store at %s: %w", cfg.BackendName(), cfg.BasePath(), err)
	}
	return p, nil
}

// withService opens the store, loads the events and calls fn.
func withService(ctx context.Context, fn func(*app.Service, store.Persistence) error) error {
	p, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			slog.Warn("close store", "error", err)
		}
	}()

	svc, err := app.New(ctx, p)
	if err != nil {
		return err
	}
	return fn(svc, p)
}
