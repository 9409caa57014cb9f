package options

import (
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/form"
)

// EventOptions holds the event fields settable from flags.
type EventOptions struct {
	Title       string
	Description string
	Start       string
	End         string
	At          string
	For         string
	Color       string
	Importance  string
	Type        string
}

func names[T ~string](all []T) string {
	s := make([]string, len(all))
	for i, v := range all {
		s[i] = string(v)
	}
	return strings.Join(s, "|")
}

// AddEventArgs registers the event field flags. The title flag is only
// added for edits; add takes the title as arguments.
func AddEventArgs(cmd *cobra.Command, o *EventOptions, edit bool) {
	if edit {
		cmd.Flags().StringVar(&o.Title, "title", "", "New title.")
	}
	cmd.Flags().StringVarP(&o.Description, "description", "m", "", "Event description.")
	cmd.Flags().StringVar(&o.Start, "start", "",
		base.Wrap80(`Start time, example: --start="2024-01-10 09:00" or --start="tomorrow 3pm".`))
	cmd.Flags().StringVar(&o.End, "end", "", "End time, same formats as --start.")
	cmd.Flags().StringVar(&o.At, "at", "", "Start time, alias of --start for use with --for.")
	cmd.Flags().StringVar(&o.For, "for", "", `Length of the event, example: --for=30m or --for=1h30m.`)
	cmd.Flags().StringVarP(&o.Color, "color", "c", "", "Color, one of "+names(event.AllColors())+".")
	cmd.Flags().StringVarP(&o.Importance, "importance", "i", "", "Importance, one of "+names(event.AllImportances())+".")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "", "Type, one of "+names(event.AllTypes())+".")
}

// Input converts the flags to a form input. A title or description flag
// given as "" on cmd clears the field.
func (o *EventOptions) Input(cmd *cobra.Command) form.Input {
	in := form.Input{
		Title:       o.Title,
		Description: o.Description,
		Start:       o.Start,
		End:         o.End,
		At:          o.At,
		For:         o.For,
		Color:       o.Color,
		Importance:  o.Importance,
		Type:        o.Type,
	}
	if cmd != nil {
		in.ClearTitle = cmd.Flags().Changed("title") && strings.TrimSpace(o.Title) == ""
		in.ClearDescription = cmd.Flags().Changed("description") && strings.TrimSpace(o.Description) == ""
	}
	return in
}
