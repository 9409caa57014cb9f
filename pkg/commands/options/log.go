package options

import (
	"github.com/spf13/cobra"
)

// GlobalOptions are the persistent flags of the root command.
type GlobalOptions struct {
	// Ephemeral keeps events in memory and never touches the store.
	Ephemeral bool
	LogLevel  string
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Use an in-memory store seeded with sample events.")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Log level, one of debug, info, warn or error. Overrides the config file.")
}
