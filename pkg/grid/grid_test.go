package grid

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonthGridCompleteness(t *testing.T) {
	refs := []time.Time{
		date(2024, time.January, 10),
		date(2024, time.February, 29),
		date(2023, time.February, 1),
		date(2026, time.March, 31),
		date(2015, time.February, 14), // starts on a Sunday, fits in four rows
		date(2024, time.September, 30),
	}
	for _, ref := range refs {
		cells := MonthGrid(ref)
		if len(cells) != CellCount {
			t.Fatalf("%s: got %d cells, want %d", ref.Format("Jan 2006"), len(cells), CellCount)
		}
		if cells[0].Date.Weekday() != time.Sunday {
			t.Fatalf("%s: first cell is %s", ref.Format("Jan 2006"), cells[0].Date.Weekday())
		}
		for i := 1; i < len(cells); i++ {
			want := cells[i-1].Date.AddDate(0, 0, 1)
			if !cells[i].Date.Equal(want) {
				t.Fatalf("%s: cell %d = %s, want %s", ref.Format("Jan 2006"), i, cells[i].Date, want)
			}
		}

		var days []int
		for _, c := range cells {
			if c.CurrentMonth {
				if c.Date.Month() != ref.Month() {
					t.Fatalf("%s: cell %s marked current", ref.Format("Jan 2006"), c.Date)
				}
				days = append(days, c.Date.Day())
			} else if c.Date.Month() == ref.Month() && c.Date.Year() == ref.Year() {
				t.Fatalf("%s: cell %s not marked current", ref.Format("Jan 2006"), c.Date)
			}
		}
		if len(days) != DaysIn(ref) {
			t.Fatalf("%s: %d current cells, want %d", ref.Format("Jan 2006"), len(days), DaysIn(ref))
		}
		for i, d := range days {
			if d != i+1 {
				t.Fatalf("%s: current cells out of order at %d: %v", ref.Format("Jan 2006"), i, days)
			}
		}
	}
}

func TestMonthGridJanuary2024(t *testing.T) {
	cells := MonthGrid(date(2024, time.January, 10))
	// January 1st 2024 is a Monday.
	if want := date(2023, time.December, 31); !cells[0].Date.Equal(want) {
		t.Fatalf("first cell = %s, want %s", cells[0].Date, want)
	}
	if want := date(2024, time.February, 10); !cells[41].Date.Equal(want) {
		t.Fatalf("last cell = %s, want %s", cells[41].Date, want)
	}
	if cells[0].CurrentMonth || !cells[1].CurrentMonth {
		t.Fatalf("current month flags wrong around the 1st")
	}
}

func TestWeeks(t *testing.T) {
	rows := Weeks(MonthGrid(date(2024, time.January, 1)))
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	for i, row := range rows {
		if len(row) != DaysPerWeek {
			t.Fatalf("row %d has %d cells", i, len(row))
		}
		if row[0].Date.Weekday() != time.Sunday {
			t.Fatalf("row %d starts on %s", i, row[0].Date.Weekday())
		}
	}
}

func TestWeekGridStartsSunday(t *testing.T) {
	start := date(2024, time.January, 1)
	for i := 0; i < 400; i++ {
		ref := start.AddDate(0, 0, i).Add(13 * time.Hour)
		days := WeekGrid(ref)
		if len(days) != DaysPerWeek {
			t.Fatalf("%s: got %d days", ref, len(days))
		}
		if days[0].Weekday() != time.Sunday {
			t.Fatalf("%s: week starts on %s", ref, days[0].Weekday())
		}
		found := false
		for _, d := range days {
			if SameDay(d, ref) {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: week %s..%s does not contain ref", ref, days[0], days[6])
		}
	}
}

func TestWeekGridCrossesMonth(t *testing.T) {
	days := WeekGrid(date(2024, time.March, 1)) // Friday
	if want := date(2024, time.February, 25); !days[0].Equal(want) {
		t.Fatalf("week start = %s, want %s", days[0], want)
	}
	if want := date(2024, time.March, 2); !days[6].Equal(want) {
		t.Fatalf("week end = %s, want %s", days[6], want)
	}
}

func TestDayHours(t *testing.T) {
	ref := time.Date(2024, time.January, 10, 15, 42, 0, 0, time.Local)
	slots := DayHours(ref)
	if len(slots) != HoursPerDay {
		t.Fatalf("got %d slots", len(slots))
	}
	for h, s := range slots {
		if s.Hour != h || s.Date.Hour() != h || !SameDay(s.Date, ref) {
			t.Fatalf("slot %d = %+v", h, s)
		}
	}
}

func TestYearMonths(t *testing.T) {
	months := YearMonths(date(2024, time.June, 15))
	if len(months) != MonthsPerYear {
		t.Fatalf("got %d months", len(months))
	}
	for i, m := range months {
		if m.First.Month() != time.Month(i+1) || m.First.Day() != 1 || m.First.Year() != 2024 {
			t.Fatalf("month %d first = %s", i, m.First)
		}
		if len(m.Cells) != CellCount {
			t.Fatalf("month %d has %d cells", i, len(m.Cells))
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := map[time.Time]int{
		date(2024, time.February, 10): 29,
		date(2023, time.February, 10): 28,
		date(2024, time.April, 30):    30,
		date(2024, time.December, 31): 31,
	}
	for ref, want := range tests {
		if got := DaysIn(ref); got != want {
			t.Fatalf("DaysIn(%s) = %d, want %d", ref.Format("Jan 2006"), got, want)
		}
	}
}

func TestHourLabel(t *testing.T) {
	tests := map[int]string{
		0:  "12 AM",
		1:  "1 AM",
		11: "11 AM",
		12: "12 PM",
		13: "1 PM",
		23: "11 PM",
	}
	for h, want := range tests {
		if got := HourLabel(h); got != want {
			t.Fatalf("HourLabel(%d) = %q, want %q", h, got, want)
		}
	}
}
