package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/runner/transfer"
	"tableflip.dev/cal/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	file := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all events as an iCalendar file",
		Example: `
cal export > cal.ics
cal export --file ~/cal.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				x := transfer.Export{Service: svc, Path: file}
				return x.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Write to this file instead of stdout.")

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Merge the events of an iCalendar file",
		Example: `
cal import ~/Downloads/team.ics
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				m := transfer.Import{Service: svc, Path: args[0]}
				return m.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
