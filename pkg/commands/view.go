package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/runner/more"
	viewrunner "tableflip.dev/cal/pkg/runner/view"
	"tableflip.dev/cal/pkg/store"
	"tableflip.dev/cal/pkg/view"
)

func addView(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "view [year|month|week|day]",
		Short: "Print the calendar grid",
		Example: `
cal view
cal view week --on 1/10
cal view y
`,
		ValidArgs: []string{"year", "month", "week", "day"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := view.Month
			if len(args) == 1 {
				var err error
				if g, err = view.ParseGranularity(args[0]); err != nil {
					return output.HandleError(err)
				}
			}
			now := time.Now()
			on, err := oo.GetOnOr(form.New(nil), now)
			if err != nil {
				return output.HandleError(err)
			}
			err = withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				v := viewrunner.View{
					Service:     svc,
					Granularity: g,
					On:          on,
					Limits:      cfg.Limits(),
					ShowID:      ido.ShowID,
				}
				return v.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}

func addMore(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	ido := &options.IDOptions{}
	hour := -1

	cmd := &cobra.Command{
		Use:   "more",
		Short: "List every event of one day or hour, including the ones hidden behind +N more",
		Example: `
cal more --on 2024-1-10
cal more --on today --hour 9
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := oo.GetOnOr(form.New(nil), time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			err = withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				m := more.More{Service: svc, Day: day, ShowID: ido.ShowID}
				if cmd.Flags().Changed("hour") {
					m.Hour = &hour
				}
				return m.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, ido)
	cmd.Flags().IntVar(&hour, "hour", -1, "Only list the events starting in this hour, 0-23.")

	topLevel.AddCommand(cmd)
}
