package analytics

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestMondayOf verifies the Monday-on-or-before calculation for every
// weekday, including Sunday which belongs to the preceding week.
func TestMondayOf(t *testing.T) {
	monday := date(2024, time.July, 29)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		if got := mondayOf(day); !got.Equal(monday) {
			t.Errorf("mondayOf(%s) = %s, want %s",
				day.Format("Mon 2006-01-02"), got.Format("2006-01-02"), monday.Format("2006-01-02"))
		}
	}
}

// TestSundayOf verifies the Sunday-on-or-before calculation.
func TestSundayOf(t *testing.T) {
	sunday := date(2024, time.July, 28)
	for i := 0; i < 7; i++ {
		day := sunday.AddDate(0, 0, i)
		if got := sundayOf(day); !got.Equal(sunday) {
			t.Errorf("sundayOf(%s) = %s, want %s",
				day.Format("Mon 2006-01-02"), got.Format("2006-01-02"), sunday.Format("2006-01-02"))
		}
	}
}

// TestWeekLabel verifies week labels within a month and across month and
// year boundaries.
func TestWeekLabel(t *testing.T) {
	cases := []struct {
		start time.Time
		want  string
	}{
		{date(2024, time.July, 1), "Jul 1-7"},
		{date(2024, time.July, 29), "Jul 29-Aug 4"},
		{date(2024, time.December, 30), "Dec 30-Jan 5"},
	}
	for _, c := range cases {
		end := c.start.AddDate(0, 0, 6)
		if got := weekLabel(c.start, end); got != c.want {
			t.Errorf("weekLabel(%s) = %q, want %q", c.start.Format("2006-01-02"), got, c.want)
		}
	}
}

// TestInRange verifies inclusive date-range membership regardless of the
// time-of-day on the tested value.
func TestInRange(t *testing.T) {
	start := date(2024, time.July, 1)
	end := date(2024, time.July, 7)

	if !inRange(date(2024, time.July, 1), start, end) {
		t.Error("start day should be in range")
	}
	if !inRange(date(2024, time.July, 7).Add(23*time.Hour), start, end) {
		t.Error("end day with time-of-day should be in range")
	}
	if inRange(date(2024, time.June, 30), start, end) {
		t.Error("day before start should be out of range")
	}
	if inRange(date(2024, time.July, 8), start, end) {
		t.Error("day after end should be out of range")
	}
}
