package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/grid"
	"tableflip.dev/cal/pkg/view"
)

const (
	// width of a mini month: "11 12 13 14 15 16 17".
	miniWidth = len("11 12 13 14 15 16 17")
	cellWidth = 14
)

// Month prints the 42-cell month grid with up to limit events per day.
func (pp *PrettyPrint) Month(ref time.Time, events []*event.Event, limit int) {
	w := pp.out()
	now := pp.now()

	pp.Title(view.Title(view.Month, ref))

	header := color.New(color.Bold)
	for _, d := range grid.WeekGrid(ref) {
		_, _ = header.Fprint(w, pad(d.Format("Mon"), cellWidth))
	}
	_, _ = fmt.Fprintln(w)

	faint := color.New(color.Faint)
	today := color.New(color.Bold, color.Underline)

	for _, week := range grid.Weeks(grid.MonthGrid(ref)) {
		buckets := make([]bucket.Overflow, len(week))
		lines := 1
		for i, cell := range week {
			buckets[i] = bucket.Truncate(bucket.ByDay(events, cell.Date), limit)
			n := len(buckets[i].Shown)
			if buckets[i].Hidden > 0 {
				n++
			}
			lines = max(lines, n)
		}

		rows := make([][]string, lines+1)
		for i, cell := range week {
			num := pad(fmt.Sprintf("%2d", cell.Date.Day()), cellWidth)
			switch {
			case grid.SameDay(cell.Date, now):
				num = today.Sprint(num)
			case !cell.CurrentMonth:
				num = faint.Sprint(num)
			}
			rows[0] = append(rows[0], num)

			o := buckets[i]
			for j := 0; j < lines; j++ {
				var text string
				switch {
				case j < len(o.Shown):
					text = chip(o.Shown[j], cellWidth-1) + " "
				case j == len(o.Shown) && o.Hidden > 0:
					text = faint.Sprint(pad(o.Label(), cellWidth))
				default:
					text = strings.Repeat(" ", cellWidth)
				}
				rows[j+1] = append(rows[j+1], text)
			}
		}

		for _, r := range rows {
			line := strings.TrimRight(strings.Join(r, ""), " ")
			if line == "" {
				continue
			}
			_, _ = fmt.Fprintln(w, line)
		}
	}
	_, _ = fmt.Fprintln(w)
}

// Year prints twelve mini months with days that have events in bold.
func (pp *PrettyPrint) Year(ref time.Time, events []*event.Event) {
	pp.Title(view.Title(view.Year, ref))
	for _, m := range grid.YearMonths(ref) {
		pp.MiniMonth(m, bucket.HighlightDays(events, m.First.Year(), m.First.Month()))
	}
}

// MiniMonth prints a compact month with highlighted days.
func (pp *PrettyPrint) MiniMonth(m grid.Month, highlight map[int]bool) {
	w := pp.out()
	now := pp.now()

	tf := color.New(color.FgWhite, color.Italic)
	name := m.First.Month().String()
	mid := (miniWidth - len(name)) / 2
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), name)

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	td := color.New(color.Bold, color.Underline)

	for _, week := range grid.Weeks(m.Cells) {
		if !week[0].CurrentMonth && !week[len(week)-1].CurrentMonth {
			continue
		}
		for i, cell := range week {
			sep := " "
			if i == len(week)-1 {
				sep = "\n"
			}
			if !cell.CurrentMonth {
				_, _ = fmt.Fprint(w, "  "+sep)
				continue
			}
			p := l1
			if highlight[cell.Date.Day()] {
				p = l2
			}
			if grid.SameDay(cell.Date, now) {
				p = td
			}
			_, _ = p.Fprintf(w, "%2d", cell.Date.Day())
			_, _ = fmt.Fprint(w, sep)
		}
	}
	_, _ = fmt.Fprintln(w)
}
