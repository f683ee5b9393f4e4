package analytics

import (
	"fmt"
	"time"
)

// dateOnly strips the time-of-day component.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOf returns the Monday on or before t.
func mondayOf(t time.Time) time.Time {
	t = dateOnly(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// sundayOf returns the Sunday on or before t.
func sundayOf(t time.Time) time.Time {
	t = dateOnly(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// sameDay reports whether a and b fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// inRange reports whether d falls within [start, end], inclusive on both
// ends, comparing calendar dates only.
func inRange(d, start, end time.Time) bool {
	d = dateOnly(d)
	return !d.Before(dateOnly(start)) && !d.After(dateOnly(end))
}

// weekLabel formats a week range as "Jul 1-7", or "Jul 29-Aug 4" when the
// week crosses a month boundary.
func weekLabel(start, end time.Time) string {
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d-%d", start.Format("Jan"), start.Day(), end.Day())
	}
	return fmt.Sprintf("%s %d-%s %d", start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day())
}
