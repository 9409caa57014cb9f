package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/grid"
)

const layoutShort = "1/2"

// OnOptions selects the reference date of a command.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-1-10", --on="1/10" or --on="next friday".`)
}

// GetOn returns midnight of the selected day, or nil when --on is unset.
func (o *OnOptions) GetOn(f *form.Form, now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation(layoutShort, o.OnString, time.Local); err == nil {
		t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
		// 1/3 asked on 12/5 means next January, not eleven months ago.
		if t.Before(grid.StartOfDay(now)) {
			t = t.AddDate(1, 0, 0)
		}
		return &t, nil
	}
	t, err := f.ParseDay(o.OnString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetOnOr is GetOn with today as the default.
func (o *OnOptions) GetOnOr(f *form.Form, now time.Time) (time.Time, error) {
	on, err := o.GetOn(f, now)
	if err != nil || on == nil {
		return grid.StartOfDay(now), err
	}
	return *on, nil
}
