// Package grid computes the day, week, month and year grids the calendar
// views are drawn on. Weeks always start on Sunday and month grids always
// hold six full weeks so the layout never jumps between months.
package grid

import (
	"fmt"
	"time"
)

const (
	// CellCount is the number of cells in a month grid (6 weeks of 7 days).
	CellCount = 42
	// DaysPerWeek is the width of every grid row.
	DaysPerWeek = 7
	// HoursPerDay is the number of hour slots in the day and week views.
	HoursPerDay = 24
	// MonthsPerYear is the number of months in the year view.
	MonthsPerYear = 12
)

// Cell is one day of a month grid.
type Cell struct {
	Date         time.Time
	CurrentMonth bool
}

// Slot is one hour of a day. Date is the start of the hour.
type Slot struct {
	Date time.Time
	Hour int
}

// Month is one month of the year view.
type Month struct {
	First time.Time
	Cells []Cell
}

// MonthGrid returns the 42 days shown for ref's month, starting with the
// Sunday on or before the first of the month.
func MonthGrid(ref time.Time) []Cell {
	first := FirstOfMonth(ref)
	start := StartOfWeek(first)
	cells := make([]Cell, 0, CellCount)
	for i := 0; i < CellCount; i++ {
		d := time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, start.Location())
		cells = append(cells, Cell{
			Date:         d,
			CurrentMonth: d.Month() == first.Month(),
		})
	}
	return cells
}

// Weeks splits cells into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+DaysPerWeek-1)/DaysPerWeek)
	for i := 0; i < len(cells); i += DaysPerWeek {
		end := i + DaysPerWeek
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[i:end])
	}
	return rows
}

// WeekGrid returns the seven days, Sunday first, of the week holding ref.
func WeekGrid(ref time.Time) []time.Time {
	start := StartOfWeek(ref)
	days := make([]time.Time, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		days = append(days, time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, start.Location()))
	}
	return days
}

// DayHours returns the 24 hour slots of ref's day.
func DayHours(ref time.Time) []Slot {
	slots := make([]Slot, 0, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		slots = append(slots, Slot{
			Date: time.Date(ref.Year(), ref.Month(), ref.Day(), h, 0, 0, 0, ref.Location()),
			Hour: h,
		})
	}
	return slots
}

// YearMonths returns every month of ref's year with its grid.
func YearMonths(ref time.Time) []Month {
	months := make([]Month, 0, MonthsPerYear)
	for m := time.January; m <= time.December; m++ {
		first := time.Date(ref.Year(), m, 1, 0, 0, 0, 0, ref.Location())
		months = append(months, Month{First: first, Cells: MonthGrid(first)})
	}
	return months
}

// StartOfDay returns midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// FirstOfMonth returns midnight of the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	return FirstOfMonth(t).AddDate(0, 1, -1).Day()
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// SameMonth reports whether a and b fall in the same local calendar month.
func SameMonth(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// HourLabel renders an hour of the day on a 12 hour clock, "12 AM" to "11 PM".
func HourLabel(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d %s", h, suffix)
}
