package models

import "time"

// WeeklyVolume is one point in the weekly training-volume series.
type WeeklyVolume struct {
	Week                   string  `json:"week"`
	Volume                 float64 `json:"volume"`
	ChangeFromPreviousWeek float64 `json:"changeFromPreviousWeek"`
}

// MuscleVolume maps muscle-group name to summed volume over the window,
// plus the grand total across all groups.
type MuscleVolume struct {
	MuscleVolumes map[string]float64 `json:"muscleVolumes"`
	TotalVolume   float64            `json:"totalVolume"`
}

// PersonalRecord is the best recorded set for one exercise name.
// IsNewPR is a placeholder: no historical comparison exists yet.
type PersonalRecord struct {
	Exercise string    `json:"exercise"`
	Weight   float64   `json:"weight"`
	Reps     int       `json:"reps"`
	Date     time.Time `json:"date"`
	IsNewPR  bool      `json:"isNewPR"`
}

// ConsistencyInsight is the full consistency report for one user.
type ConsistencyInsight struct {
	Title            string `json:"title"`
	Summary          string `json:"summary"`
	Percentile       int    `json:"percentile"`
	StreakDays       int    `json:"streakDays"`
	PatternFindings  string `json:"patternFindings"`
	Recommendation   string `json:"recommendation"`
	WeeklyFrequency  []int  `json:"weeklyFrequency"`
	DailyWorkouts    []int  `json:"dailyWorkouts"`
	ConsistencyScore int    `json:"consistencyScore"`
}

// ExerciseSuggestion is one autocomplete candidate for a typed exercise
// name. IsHistorical marks suggestions drawn from the user's own history
// rather than the canonical dictionary.
type ExerciseSuggestion struct {
	Name          string `json:"name"`
	CanonicalName string `json:"canonicalName,omitempty"`
	IsHistorical  bool   `json:"isHistorical"`
}
