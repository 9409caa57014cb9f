package options

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// FormatOptions selects how listings are written.
type FormatOptions struct {
	Format string
}

func AddFormatArg(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", FormatTable,
		"Output format. One of 'table', 'json' or 'yaml'.")
}

func (o *FormatOptions) Validate() error {
	switch o.Format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q", o.Format)
}
