package timefmt

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "0:00:00"},
		{59, "0:00:59"},
		{60, "0:01:00"},
		{3661, "1:01:01"},
		{86399, "23:59:59"},
		{90000, "25:00:00"},
		{-5, "0:00:00"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.seconds); got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestFormatEstimate(t *testing.T) {
	cases := []struct {
		hours, minutes int
		want           string
	}{
		{0, 0, "no estimate"},
		{2, 30, "2h 30m"},
		{0, 45, "0h 45m"},
		{8, 0, "8h 0m"},
	}
	for _, c := range cases {
		if got := FormatEstimate(c.hours, c.minutes); got != c.want {
			t.Errorf("FormatEstimate(%d, %d) = %q, want %q", c.hours, c.minutes, got, c.want)
		}
	}
}

func TestWeekBounds(t *testing.T) {
	cases := []struct {
		day       string
		wantStart string
		wantEnd   string
	}{
		{"2025-08-06", "2025-08-04", "2025-08-10"}, // Wednesday
		{"2025-08-04", "2025-08-04", "2025-08-10"}, // Monday
		{"2025-08-10", "2025-08-04", "2025-08-10"}, // Sunday
		{"2025-08-01", "2025-07-28", "2025-08-03"}, // week crossing month boundary
	}
	for _, c := range cases {
		day, err := time.Parse(DateLayout, c.day)
		if err != nil {
			t.Fatal(err)
		}
		start, end := WeekBounds(day)
		if start.Format(DateLayout) != c.wantStart || end.Format(DateLayout) != c.wantEnd {
			t.Errorf("WeekBounds(%s) = [%s, %s], want [%s, %s]",
				c.day, start.Format(DateLayout), end.Format(DateLayout), c.wantStart, c.wantEnd)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	day, err := time.Parse(DateLayout, "2024-02-15")
	if err != nil {
		t.Fatal(err)
	}
	start, end := MonthBounds(day)
	if start.Format(DateLayout) != "2024-02-01" {
		t.Errorf("month start = %s, want 2024-02-01", start.Format(DateLayout))
	}
	if end.Format(DateLayout) != "2024-02-29" {
		t.Errorf("month end = %s, want 2024-02-29", end.Format(DateLayout))
	}
}
