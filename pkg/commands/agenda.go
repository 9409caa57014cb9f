package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/runner/agenda"
	"tableflip.dev/cal/pkg/store"
)

func addAgenda(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "List upcoming events grouped by day",
		Long: `Agenda lists the events starting between now and the end of the window.

Examples:
  cal agenda
  cal agenda --for 3d
  cal agenda --for 1w2d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				a := agenda.Agenda{Service: svc, Window: wo.For, ShowID: ido.ShowID}
				return a.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}
	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}
