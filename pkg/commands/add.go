package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/runner/add"
	"tableflip.dev/cal/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	oo := &options.OnOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Add an event",
		Example: `
cal add Standup --at "2024-01-10 09:00" --for 30m --type meeting
cal add Dentist --start "tomorrow 3pm" --end "tomorrow 4pm" -c pink -i high
cal add Focus time --on 1/12
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.New(nil)
			day, err := oo.GetOn(f, time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			in := eo.Input(cmd)
			in.Title = strings.Join(args, " ")
			in.Day = day

			err = withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				a := add.Add{Service: svc, Form: f, Input: in, ShowID: ido.ShowID}
				return a.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}
	options.AddEventArgs(cmd, eo, false)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}
