package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/runner/list"
	"tableflip.dev/cal/pkg/store"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	fo := &options.FormatOptions{}
	month := false

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Example: `
cal list
cal list --on 2024-1-10
cal list --on 1/1 --month -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fo.Validate(); err != nil {
				return output.HandleError(err)
			}
			on, err := oo.GetOn(form.New(nil), time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			if month && on == nil {
				now := time.Now()
				on = &now
			}
			err = withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				l := list.List{Service: svc, On: on, Month: month, Format: fo.Format}
				return l.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddFormatArg(cmd, fo)
	cmd.Flags().BoolVar(&month, "month", false, "List the whole month of --on, or of today.")

	topLevel.AddCommand(cmd)
}
