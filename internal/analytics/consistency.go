package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/claude/jetgym/internal/models"
)

// WeeklyFrequency counts workouts per Monday-start week for the trailing
// weeksBack weeks, oldest first.
func WeeklyFrequency(workouts []models.Workout, today time.Time, weeksBack int) []int {
	currentMonday := mondayOf(today)
	frequency := make([]int, 0, weeksBack)

	for i := weeksBack - 1; i >= 0; i-- {
		weekStart := currentMonday.AddDate(0, 0, -7*i)
		weekEnd := weekStart.AddDate(0, 0, 6)

		count := 0
		for _, w := range workouts {
			if inRange(w.Date, weekStart, weekEnd) {
				count++
			}
		}
		frequency = append(frequency, count)
	}

	return frequency
}

// DailyWorkouts counts workouts per calendar day of the Sunday-start week
// containing today. The result always has length 7, Sunday through
// Saturday.
func DailyWorkouts(workouts []models.Workout, today time.Time) []int {
	weekStart := sundayOf(today)
	counts := make([]int, 7)

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		for _, w := range workouts {
			if sameDay(w.Date, day) {
				counts[i]++
			}
		}
	}

	return counts
}

// StreakDays counts consecutive calendar days with at least one workout,
// walking backward from today. A rest day today means a streak of zero.
func StreakDays(workouts []models.Workout, today time.Time) int {
	if len(workouts) == 0 {
		return 0
	}

	trained := make(map[string]bool, len(workouts))
	for _, w := range workouts {
		trained[w.Date.Format("2006-01-02")] = true
	}

	streak := 0
	day := dateOnly(today)
	for trained[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// ConsistencyScore combines average weekly frequency with (penalized)
// week-to-week variance into a 0-100 score.
func ConsistencyScore(weeklyFrequency []int) int {
	if len(weeklyFrequency) == 0 {
		return 0
	}

	avg := mean(weeklyFrequency)

	var variance float64
	for _, f := range weeklyFrequency {
		variance += math.Pow(float64(f)-avg, 2)
	}
	variance /= float64(len(weeklyFrequency))

	score := int(math.Min(100, avg*20+(50-math.Sqrt(variance)*10)))
	return max(0, score)
}

// percentileBucket maps a consistency score onto a coarse decile label.
// Lower numbers are better; this is not a population percentile.
func percentileBucket(score int) int {
	switch {
	case score >= 90:
		return 10
	case score >= 80:
		return 20
	case score >= 70:
		return 30
	case score >= 60:
		return 40
	case score >= 50:
		return 50
	case score >= 40:
		return 60
	case score >= 30:
		return 70
	case score >= 20:
		return 80
	default:
		return 90
	}
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// consistencySummary picks a templated summary keyed on average weekly
// frequency.
func consistencySummary(weeklyFrequency []int) string {
	if len(weeklyFrequency) == 0 {
		return "No workout data available for analysis."
	}

	avg := mean(weeklyFrequency)
	switch {
	case avg >= 4:
		return fmt.Sprintf("You've maintained a consistent %.0f-day workout pattern for %d weeks straight.",
			avg, len(weeklyFrequency))
	case avg >= 2:
		return fmt.Sprintf("You're building a good foundation with %.0f workouts per week on average.", avg)
	default:
		return "You're getting started with your fitness journey. Consistency will help you see better results."
	}
}

// analyzePatterns reports the most frequent training day of the week.
// Ties resolve to the earliest day, Sunday first, so output is stable.
func analyzePatterns(workouts []models.Workout) string {
	if len(workouts) < 2 {
		return "Not enough data to identify patterns yet."
	}

	var dayCounts [7]int
	for _, w := range workouts {
		dayCounts[int(w.Date.Weekday())]++
	}

	bestDay := time.Sunday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if dayCounts[d] > dayCounts[bestDay] {
			bestDay = d
		}
	}

	return fmt.Sprintf("You're most consistent on %s. Try to maintain this pattern for better results.",
		strings.ToLower(bestDay.String()))
}

// recommendation picks a templated recommendation keyed on average weekly
// frequency.
func recommendation(weeklyFrequency []int) string {
	if len(weeklyFrequency) == 0 {
		return "Start with 2-3 workouts per week to build a consistent routine."
	}

	switch avg := mean(weeklyFrequency); {
	case avg >= 4:
		return "Great consistency! Consider adding variety to your workouts to prevent plateaus."
	case avg >= 2:
		return "Try to increase to 3-4 workouts per week for optimal results."
	default:
		return "Aim for at least 2-3 workouts per week to build momentum and see progress."
	}
}

// BuildConsistencyInsight assembles the full consistency report from the
// supplied workout window. Deterministic: identical workouts and the same
// today always produce identical output.
func BuildConsistencyInsight(workouts []models.Workout, today time.Time, weeksBack int) models.ConsistencyInsight {
	frequency := WeeklyFrequency(workouts, today, weeksBack)
	score := ConsistencyScore(frequency)

	return models.ConsistencyInsight{
		Title:            "Consistency Report",
		Summary:          consistencySummary(frequency),
		Percentile:       percentileBucket(score),
		StreakDays:       StreakDays(workouts, today),
		PatternFindings:  analyzePatterns(workouts),
		Recommendation:   recommendation(frequency),
		WeeklyFrequency:  frequency,
		DailyWorkouts:    DailyWorkouts(workouts, today),
		ConsistencyScore: score,
	}
}
