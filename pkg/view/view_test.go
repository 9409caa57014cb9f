package view

import (
	"testing"
	"time"
)

func fixed(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewStartsOnMonth(t *testing.T) {
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.Local)
	c := New(fixed(now))
	if c.Granularity != Month || !c.Date.Equal(now) {
		t.Fatalf("initial state = %s %s", c.Granularity, c.Date)
	}
}

func TestNavigation(t *testing.T) {
	start := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.Local)
	tests := []struct {
		g    Granularity
		next time.Time
		prev time.Time
	}{
		// January 31 + 1 month overflows into March.
		{Month, time.Date(2024, time.March, 2, 12, 0, 0, 0, time.Local), time.Date(2023, time.December, 31, 12, 0, 0, 0, time.Local)},
		{Week, time.Date(2024, time.February, 7, 12, 0, 0, 0, time.Local), time.Date(2024, time.January, 24, 12, 0, 0, 0, time.Local)},
		{Day, time.Date(2024, time.February, 1, 12, 0, 0, 0, time.Local), time.Date(2024, time.January, 30, 12, 0, 0, 0, time.Local)},
		{Year, time.Date(2025, time.January, 31, 12, 0, 0, 0, time.Local), time.Date(2023, time.January, 31, 12, 0, 0, 0, time.Local)},
	}
	for _, tc := range tests {
		t.Run(tc.g.String(), func(t *testing.T) {
			c := New(fixed(start))
			c.Set(tc.g)
			c.Next()
			if !c.Date.Equal(tc.next) {
				t.Fatalf("next = %s, want %s", c.Date, tc.next)
			}
			c.Date = start
			c.Prev()
			if !c.Date.Equal(tc.prev) {
				t.Fatalf("prev = %s, want %s", c.Date, tc.prev)
			}
			if c.Granularity != tc.g {
				t.Fatalf("navigation changed granularity")
			}
		})
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.Local)
	c := New(fixed(now))
	c.Set(Week)
	c.Next()
	c.Next()
	c.Today()
	if !c.Date.Equal(now) || c.Granularity != Week {
		t.Fatalf("today = %s %s", c.Granularity, c.Date)
	}
}

func TestSelectMonth(t *testing.T) {
	c := New(fixed(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)))
	march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)

	c.SelectMonth(march)
	if c.Date.Month() != time.January {
		t.Fatalf("SelectMonth outside year view should do nothing")
	}

	c.Set(Year)
	c.SelectMonth(march)
	if c.Granularity != Month || !c.Date.Equal(march) {
		t.Fatalf("after select = %s %s", c.Granularity, c.Date)
	}
}

func TestTitle(t *testing.T) {
	d := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)
	tests := map[Granularity]string{
		Year:  "2024",
		Month: "January 2024",
		Week:  "Jan 7 - Jan 13, 2024",
		Day:   "Wednesday, January 10, 2024",
	}
	for g, want := range tests {
		if got := Title(g, d); got != want {
			t.Fatalf("Title(%s) = %q, want %q", g, got, want)
		}
	}
}

func TestParseGranularity(t *testing.T) {
	for _, g := range Granularities() {
		got, err := ParseGranularity(g.String())
		if err != nil || got != g {
			t.Fatalf("ParseGranularity(%q) = %s, %v", g.String(), got, err)
		}
	}
	if got, err := ParseGranularity("W"); err != nil || got != Week {
		t.Fatalf("short form: %s, %v", got, err)
	}
	if _, err := ParseGranularity("decade"); err == nil {
		t.Fatalf("expected error")
	}
}
