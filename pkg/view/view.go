// Package view holds the calendar's navigation state: the reference date and
// the granularity it is shown at.
package view

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/cal/pkg/grid"
)

// Granularity is the zoom level of the calendar.
type Granularity int

const (
	Year Granularity = iota
	Month
	Week
	Day
)

// Granularities returns every granularity, widest first.
func Granularities() []Granularity {
	return []Granularity{Year, Month, Week, Day}
}

func (g Granularity) String() string {
	switch g {
	case Year:
		return "year"
	case Month:
		return "month"
	case Week:
		return "week"
	case Day:
		return "day"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// ParseGranularity converts "year", "month", "week" or "day" (or their first
// letter) to a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "y":
		return Year, nil
	case "month", "m":
		return Month, nil
	case "week", "w":
		return Week, nil
	case "day", "d":
		return Day, nil
	}
	return Month, fmt.Errorf("view: unknown granularity %q", s)
}

// Controller is the view state machine. The zero value is not usable; call
// New.
type Controller struct {
	Date        time.Time
	Granularity Granularity

	now func() time.Time
}

// New returns a controller showing the month of now().
func New(now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		Date:        now(),
		Granularity: Month,
		now:         now,
	}
}

// Set switches granularity, keeping the reference date.
func (c *Controller) Set(g Granularity) {
	c.Granularity = g
}

// Today moves the reference date to now.
func (c *Controller) Today() {
	c.Date = c.now()
}

// Prev steps one unit of the current granularity back.
func (c *Controller) Prev() {
	c.step(-1)
}

// Next steps one unit of the current granularity forward.
func (c *Controller) Next() {
	c.step(1)
}

// Month steps normalise overflow: January 31 plus one month is March 2 in a
// leap year.
func (c *Controller) step(dir int) {
	switch c.Granularity {
	case Year:
		c.Date = c.Date.AddDate(dir, 0, 0)
	case Month:
		c.Date = c.Date.AddDate(0, dir, 0)
	case Week:
		c.Date = c.Date.AddDate(0, 0, 7*dir)
	case Day:
		c.Date = c.Date.AddDate(0, 0, dir)
	}
}

// SelectMonth opens month m from the year view. It does nothing in other
// views.
func (c *Controller) SelectMonth(m time.Time) {
	if c.Granularity != Year {
		return
	}
	c.Date = m
	c.Granularity = Month
}

// Title is the heading for the current view.
func (c *Controller) Title() string {
	return Title(c.Granularity, c.Date)
}

// Title formats the heading of a view at date.
func Title(g Granularity, date time.Time) string {
	switch g {
	case Year:
		return date.Format("2006")
	case Week:
		days := grid.WeekGrid(date)
		return fmt.Sprintf("%s - %s", days[0].Format("Jan 2"), days[len(days)-1].Format("Jan 2, 2006"))
	case Day:
		return date.Format("Monday, January 2, 2006")
	default:
		return date.Format("January 2006")
	}
}
