package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/grid"
	"tableflip.dev/cal/pkg/view"
)

const (
	defaultWidth = 84
	minCellWidth = 6
	hourWidth    = len("12 AM  ")
	miniWidth    = len("Su Mo Tu We Th Fr Sa")
)

// View renders the current state.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var body string
	if m.mode == modeListing || (m.mode == modePrompt && m.listing != nil) {
		body = m.renderListing(width)
	} else {
		switch m.ctrl.Granularity {
		case view.Year:
			body = m.renderYear(width)
		case view.Week:
			body = m.renderWeek(width)
		case view.Day:
			body = m.renderDay(width)
		default:
			body = m.renderMonth(width)
		}
	}

	parts := []string{
		m.theme.Calendar.Title.Render(m.ctrl.Title()),
		body,
		m.renderFooter(width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func cellWidth(width int) int {
	return max(minCellWidth, width/grid.DaysPerWeek)
}

func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

func (m Model) chip(e *event.Event, width int) string {
	title := e.Title
	if title == "" {
		title = "(untitled)"
	}
	return m.theme.Chip(e.Color).Render(clip(title, width))
}

// dayStyle picks the style of a day number.
func (m Model) dayStyle(d time.Time, inMonth bool) lipgloss.Style {
	t := m.theme.Calendar
	switch {
	case grid.SameDay(d, m.ctrl.Date):
		return t.Selected
	case grid.SameDay(d, m.now()):
		return t.Today
	case !inMonth:
		return t.OtherDay
	}
	return t.Day
}

func (m Model) renderMonth(width int) string {
	t := m.theme.Calendar
	cw := cellWidth(width)
	cell := lipgloss.NewStyle().Width(cw)

	header := make([]string, 0, grid.DaysPerWeek)
	for _, d := range grid.WeekGrid(m.ctrl.Date) {
		header = append(header, cell.Inherit(t.Header).Render(d.Format("Mon")))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for _, week := range grid.Weeks(grid.MonthGrid(m.ctrl.Date)) {
		cols := make([]string, 0, len(week))
		for _, c := range week {
			o := bucket.Truncate(bucket.ByDay(m.events, c.Date), m.limits.Month)
			lines := []string{m.dayStyle(c.Date, c.CurrentMonth).Render(fmt.Sprintf("%2d", c.Date.Day()))}
			for _, e := range o.Shown {
				lines = append(lines, m.chip(e, cw-1))
			}
			if o.Hidden > 0 {
				lines = append(lines, t.More.Render(clip(o.Label(), cw-1)))
			}
			cols = append(cols, cell.Render(strings.Join(lines, "\n")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderWeek(width int) string {
	t := m.theme.Calendar
	cw := cellWidth(width)
	cell := lipgloss.NewStyle().Width(cw)

	cols := make([]string, 0, grid.DaysPerWeek)
	for _, d := range grid.WeekGrid(m.ctrl.Date) {
		selectedDay := grid.SameDay(d, m.ctrl.Date)
		lines := []string{m.dayStyle(d, true).Render(clip(d.Format("Mon 2"), cw-1))}
		for _, slot := range grid.DayHours(d) {
			o := bucket.Truncate(bucket.ByDayHour(m.events, slot.Date, slot.Hour), m.limits.Week)
			stampStyle := t.Hour
			if selectedDay && slot.Hour == m.hour {
				stampStyle = t.Selected
				if len(o.Shown) == 0 {
					lines = append(lines, stampStyle.Render(clip(grid.HourLabel(slot.Hour), cw-1)))
				}
			}
			for _, e := range o.Shown {
				stamp := e.Start.Local().Format("15:04") + " "
				lines = append(lines, stampStyle.Render(stamp)+m.chip(e, cw-1-len(stamp)))
			}
			if o.Hidden > 0 {
				lines = append(lines, t.More.Render(clip(o.Label()+" "+grid.HourLabel(slot.Hour), cw-1)))
			}
		}
		cols = append(cols, cell.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderDay(width int) string {
	t := m.theme.Calendar
	avail := width - hourWidth

	rows := make([]string, 0, grid.HoursPerDay)
	for _, slot := range grid.DayHours(m.ctrl.Date) {
		label := t.Hour
		if slot.Hour == m.hour {
			label = t.Selected
		}
		line := label.Render(fmt.Sprintf("%-*s", hourWidth-2, grid.HourLabel(slot.Hour))) + "  "

		o := bucket.Truncate(bucket.ByDayHour(m.events, slot.Date, slot.Hour), m.limits.Day)
		used := 0
		for i, e := range o.Shown {
			if i > 0 {
				line += "  "
				used += 2
			}
			w := min(lipgloss.Width(e.Title), max(avail-used, 0))
			if w == 0 {
				break
			}
			line += m.chip(e, w)
			used += w
		}
		if o.Hidden > 0 && avail-used > 2 {
			line += "  " + t.More.Render(clip(o.Label(), avail-used-2))
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderYear(width int) string {
	perRow := max(1, min(4, width/(miniWidth+2)))
	months := grid.YearMonths(m.ctrl.Date)

	var rows []string
	for i := 0; i < len(months); i += perRow {
		end := min(i+perRow, len(months))
		blocks := make([]string, 0, perRow)
		for _, mo := range months[i:end] {
			blocks = append(blocks, lipgloss.NewStyle().Width(miniWidth+2).Render(m.renderMini(mo)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderMini(mo grid.Month) string {
	t := m.theme.Calendar
	busy := bucket.HighlightDays(m.events, mo.First.Year(), mo.First.Month())

	name := t.MonthName
	if grid.SameMonth(mo.First, m.ctrl.Date) {
		name = t.Selected
	}
	lines := []string{
		name.Render(mo.First.Month().String()),
		t.Header.Render("Su Mo Tu We Th Fr Sa"),
	}
	for _, week := range grid.Weeks(mo.Cells) {
		if !week[0].CurrentMonth && !week[len(week)-1].CurrentMonth {
			continue
		}
		cells := make([]string, 0, len(week))
		for _, c := range week {
			if !c.CurrentMonth {
				cells = append(cells, "  ")
				continue
			}
			s := t.OtherDay
			if busy[c.Date.Day()] {
				s = t.Busy
			}
			if grid.SameDay(c.Date, m.now()) {
				s = t.Today
			}
			cells = append(cells, s.Render(fmt.Sprintf("%2d", c.Date.Day())))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderListing(width int) string {
	lt := m.theme.Listing
	l := m.listing
	if l == nil {
		return ""
	}
	inner := max(width-4, 10)

	lines := []string{lt.Title.Render(clip(fmt.Sprintf("%s (%d)", l.title, len(l.events)), inner))}
	if len(l.events) == 0 {
		lines = append(lines, lt.Faint.Render("none"))
	}
	for i, e := range l.events {
		s, en := e.Start.Local(), e.End.Local()
		prefix := fmt.Sprintf("%s-%s %-6s ", s.Format("15:04"), en.Format("15:04"), e.Importance)
		rest := e.Title
		if e.Description != "" {
			rest += " - " + e.Description
		}
		text := clip(prefix+rest, inner)
		if i == l.cursor {
			lines = append(lines, lt.Cursor.Render(text))
			continue
		}
		head := clip(prefix, inner)
		lines = append(lines, head+m.theme.Chip(e.Color).Render(clip(rest, inner-lipgloss.Width(head))))
	}
	return lt.Frame.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter(width int) string {
	f := m.theme.Footer
	var lines []string
	switch {
	case m.mode == modePrompt:
		lines = append(lines, f.Prompt.Render(m.input.View()))
	case m.status != "" && m.statusErr:
		lines = append(lines, f.Error.Render(clip(m.status, width)))
	case m.status != "":
		lines = append(lines, f.Status.Render(clip(m.status, width)))
	}
	lines = append(lines, f.Help.Render(m.help.View(m.keys)))
	return strings.Join(lines, "\n")
}
