package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/runner/edit"
	"tableflip.dev/cal/pkg/runner/remove"
	"tableflip.dev/cal/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of an event",
		Example: `
cal edit 1 --title "Team Sync"
cal edit 1 --start "2024-01-10 13:00"
cal edit 2 --for 2h -i low
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				e := edit.Edit{
					Service: svc,
					Form:    form.New(nil),
					ID:      args[0],
					Input:   eo.Input(cmd),
					ShowID:  ido.ShowID,
				}
				return e.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}
	options.AddEventArgs(cmd, eo, true)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete ID...",
		Aliases: []string{"rm"},
		Short:   "Delete events",
		Example: `
cal delete 3
cal rm 1 2
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: idCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				r := remove.Remove{Service: svc, IDs: args}
				return r.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
