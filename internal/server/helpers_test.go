package server

import (
	"net/http/httptest"
	"testing"
	"time"
)

// TestWeeksBackParam verifies the default of 7 and explicit overrides.
func TestWeeksBackParam(t *testing.T) {
	cases := []struct {
		url  string
		want int
	}{
		{"/api/v1/analytics/weekly-volume", 7},
		{"/api/v1/analytics/weekly-volume?weeks=12", 12},
		{"/api/v1/analytics/weekly-volume?weeks=-3", -3},
		{"/api/v1/analytics/weekly-volume?weeks=abc", 0},
	}
	for _, c := range cases {
		req := httptest.NewRequest("GET", c.url, nil)
		if got := weeksBackParam(req); got != c.want {
			t.Errorf("weeksBackParam(%q) = %d, want %d", c.url, got, c.want)
		}
	}
}

// TestParseDateRange verifies open and closed date ranges.
func TestParseDateRange(t *testing.T) {
	start, end, err := parseDateRange("2024-07-01", "2024-07-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}

	// Open start.
	start, _, err = parseDateRange("", "2024-07-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.IsZero() {
		t.Errorf("open start = %v, want zero", start)
	}

	// Open end.
	_, end, err = parseDateRange("2024-07-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end.Year() != 9999 {
		t.Errorf("open end = %v, want far future", end)
	}

	if _, _, err = parseDateRange("not-a-date", ""); err == nil {
		t.Error("want error for malformed date")
	}
}
