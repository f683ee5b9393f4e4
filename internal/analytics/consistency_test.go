package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/claude/jetgym/internal/models"
)

// TestWeeklyFrequency verifies per-week workout counts, oldest first.
func TestWeeklyFrequency(t *testing.T) {
	today := date(2024, time.July, 31)
	workouts := []models.Workout{
		{Date: date(2024, time.July, 22)},
		{Date: date(2024, time.July, 24)},
		{Date: date(2024, time.July, 30)},
	}

	got := WeeklyFrequency(workouts, today, 2)
	want := []int{2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeeklyFrequency = %v, want %v", got, want)
	}
}

// TestDailyWorkouts verifies the Sunday-start current-week histogram.
func TestDailyWorkouts(t *testing.T) {
	today := date(2024, time.July, 31) // Wednesday; week starts Sunday Jul 28
	workouts := []models.Workout{
		{Date: date(2024, time.July, 28)}, // Sunday
		{Date: date(2024, time.July, 31)}, // Wednesday
		{Date: date(2024, time.July, 31)},
		{Date: date(2024, time.July, 27)}, // previous week, ignored
	}

	got := DailyWorkouts(workouts, today)
	want := []int{1, 0, 0, 2, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DailyWorkouts = %v, want %v", got, want)
	}
}

// TestStreakDays verifies the walk back from today and that a rest day
// today zeroes the streak.
func TestStreakDays(t *testing.T) {
	today := date(2024, time.July, 31)

	workouts := []models.Workout{
		{Date: date(2024, time.July, 31)},
		{Date: date(2024, time.July, 30)},
		{Date: date(2024, time.July, 28)}, // gap on the 29th
	}
	if got := StreakDays(workouts, today); got != 2 {
		t.Errorf("StreakDays = %d, want 2", got)
	}

	restToday := []models.Workout{{Date: date(2024, time.July, 30)}}
	if got := StreakDays(restToday, today); got != 0 {
		t.Errorf("StreakDays with rest day today = %d, want 0", got)
	}

	if got := StreakDays(nil, today); got != 0 {
		t.Errorf("StreakDays(no workouts) = %d, want 0", got)
	}
}

// TestConsistencyScore verifies the scoring formula at its edges: steady
// high frequency caps at 100, empty input scores 0, and no input ever
// escapes the 0-100 range.
func TestConsistencyScore(t *testing.T) {
	if got := ConsistencyScore([]int{3, 3, 3, 3}); got != 100 {
		t.Errorf("steady 3/week = %d, want 100", got)
	}
	if got := ConsistencyScore(nil); got != 0 {
		t.Errorf("empty = %d, want 0", got)
	}
	// Zero activity still earns the variance baseline.
	if got := ConsistencyScore([]int{0, 0, 0}); got != 50 {
		t.Errorf("all zeroes = %d, want 50", got)
	}

	cases := [][]int{
		{0, 10}, {7, 0, 7, 0}, {1}, {5, 5, 5, 5, 5, 5, 5}, {0, 0, 0, 12},
	}
	for _, c := range cases {
		if got := ConsistencyScore(c); got < 0 || got > 100 {
			t.Errorf("ConsistencyScore(%v) = %d, out of [0,100]", c, got)
		}
	}
}

// TestPercentileBucket verifies the decile mapping at boundaries.
func TestPercentileBucket(t *testing.T) {
	cases := []struct{ score, want int }{
		{95, 10}, {90, 10}, {89, 20}, {70, 30}, {55, 50}, {20, 80}, {19, 90}, {0, 90},
	}
	for _, c := range cases {
		if got := percentileBucket(c.score); got != c.want {
			t.Errorf("percentileBucket(%d) = %d, want %d", c.score, got, c.want)
		}
	}
}

// TestAnalyzePatterns verifies the most-frequent-day finding and the
// minimum-data message.
func TestAnalyzePatterns(t *testing.T) {
	if got := analyzePatterns([]models.Workout{{Date: date(2024, time.July, 1)}}); got != "Not enough data to identify patterns yet." {
		t.Errorf("single workout = %q", got)
	}

	workouts := []models.Workout{
		{Date: date(2024, time.July, 1)}, // Monday
		{Date: date(2024, time.July, 8)}, // Monday
		{Date: date(2024, time.July, 3)}, // Wednesday
	}
	want := "You're most consistent on monday. Try to maintain this pattern for better results."
	if got := analyzePatterns(workouts); got != want {
		t.Errorf("analyzePatterns = %q, want %q", got, want)
	}
}

// TestConsistencySummaryTiers verifies the three summary templates.
func TestConsistencySummaryTiers(t *testing.T) {
	if got := consistencySummary(nil); got != "No workout data available for analysis." {
		t.Errorf("empty = %q", got)
	}
	if got := consistencySummary([]int{4, 4, 4}); got != "You've maintained a consistent 4-day workout pattern for 3 weeks straight." {
		t.Errorf("high tier = %q", got)
	}
	if got := consistencySummary([]int{2, 2}); got != "You're building a good foundation with 2 workouts per week on average." {
		t.Errorf("mid tier = %q", got)
	}
	if got := consistencySummary([]int{1, 0}); got != "You're getting started with your fitness journey. Consistency will help you see better results." {
		t.Errorf("low tier = %q", got)
	}
}

// TestRecommendationTiers verifies the three recommendation templates.
func TestRecommendationTiers(t *testing.T) {
	if got := recommendation(nil); got != "Start with 2-3 workouts per week to build a consistent routine." {
		t.Errorf("empty = %q", got)
	}
	if got := recommendation([]int{5, 5}); got != "Great consistency! Consider adding variety to your workouts to prevent plateaus." {
		t.Errorf("high tier = %q", got)
	}
	if got := recommendation([]int{2, 3}); got != "Try to increase to 3-4 workouts per week for optimal results." {
		t.Errorf("mid tier = %q", got)
	}
	if got := recommendation([]int{1, 1}); got != "Aim for at least 2-3 workouts per week to build momentum and see progress." {
		t.Errorf("low tier = %q", got)
	}
}

// TestBuildConsistencyInsightDeterministic verifies that identical inputs
// always produce identical reports.
func TestBuildConsistencyInsightDeterministic(t *testing.T) {
	today := date(2024, time.July, 31)
	workouts := []models.Workout{
		{Date: date(2024, time.July, 29)},
		{Date: date(2024, time.July, 30)},
		{Date: date(2024, time.July, 31)},
		{Date: date(2024, time.July, 23)},
	}

	a := BuildConsistencyInsight(workouts, today, 7)
	b := BuildConsistencyInsight(workouts, today, 7)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("insight not deterministic:\n%+v\n%+v", a, b)
	}

	if a.Title != "Consistency Report" {
		t.Errorf("Title = %q", a.Title)
	}
	if a.StreakDays != 3 {
		t.Errorf("StreakDays = %d, want 3", a.StreakDays)
	}
	if len(a.WeeklyFrequency) != 7 {
		t.Errorf("len(WeeklyFrequency) = %d, want 7", len(a.WeeklyFrequency))
	}
	if len(a.DailyWorkouts) != 7 {
		t.Errorf("len(DailyWorkouts) = %d, want 7", len(a.DailyWorkouts))
	}
}
