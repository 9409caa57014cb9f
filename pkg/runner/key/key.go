// Package key prints the legend of colors, importance markers and types.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/printers"
)

// Key prints the legend tables.
type Key struct {
	Out io.Writer
}

var title = cases.Title(language.English)

func (k *Key) out() io.Writer {
	if k.Out == nil {
		return color.Output
	}
	return k.Out
}

// Do renders the type, importance and color keys.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(k.out(), "")

	types := event.AllTypes()
	rows := make([][2]string, 0, len(types))
	for _, t := range types {
		c := t.DefaultColor()
		rows = append(rows, [2]string{title.String(string(t)), printers.ColorFor(c).Sprint("default " + string(c))})
	}
	k.Key(ctx, "Types", rows)

	imps := event.AllImportances()
	rows = rows[:0]
	for i := len(imps) - 1; i >= 0; i-- {
		mark := printers.ImportanceMark(imps[i])
		if mark == " " {
			mark = "(blank)"
		}
		rows = append(rows, [2]string{mark, title.String(string(imps[i]))})
	}
	k.Key(ctx, "Importance", rows)

	rows = rows[:0]
	for _, c := range event.AllColors() {
		rows = append(rows, [2]string{printers.ColorFor(c).Sprint("■"), title.String(string(c))})
	}
	k.Key(ctx, "Colors", rows)
	return nil
}

// Key renders one two column table under heading.
func (k *Key) Key(_ context.Context, heading string, rows [][2]string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(fmt.Sprintf("%10s", heading)), bold.Sprint("Meaning"))
	for _, r := range rows {
		tbl.AddRow(r[0], r[1])
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.out(), tbl)
	_, _ = fmt.Fprintln(k.out(), "")
}
