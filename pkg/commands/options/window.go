package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/timeutil"
)

// WindowOptions is a look-ahead window such as 3d or 1w2d.
type WindowOptions struct {
	For string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.For, "for", timeutil.DefaultAgenda,
		"Time window to include, for example 3d or 1w.")
}
