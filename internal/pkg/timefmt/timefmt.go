package timefmt

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// FormatDuration renders whole seconds as H:MM:SS. Negative input clamps
// to zero; durations are non-negative at the interface boundary.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// FormatEstimate renders a task estimate. A zero estimate means none was
// recorded, so it renders "no estimate" rather than "0h 0m".
func FormatEstimate(hours, minutes int) string {
	if hours == 0 && minutes == 0 {
		return "no estimate"
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// Day truncates a timestamp to its calendar day in the timestamp's location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekBounds returns the first and last day of the ISO week containing day
// (Monday through Sunday).
func WeekBounds(day time.Time) (time.Time, time.Time) {
	d := Day(day)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	start := d.AddDate(0, 0, -(wd - 1))
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of the calendar month
// containing day.
func MonthBounds(day time.Time) (time.Time, time.Time) {
	d := Day(day)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	return start, start.AddDate(0, 1, -1)
}
