package analytics

import "github.com/claude/jetgym/internal/models"

const (
	// defaultBodyweight is the assumed bodyweight, in pounds, when a set
	// carries no weight of its own.
	defaultBodyweight = 150.0

	// intensityMultiplier discounts estimated loads for bodyweight and
	// time-based work.
	intensityMultiplier = 0.5
)

// SetVolume converts one exercise set into a unitless volume scalar.
//
// Rules, in priority order:
//  1. nil or non-positive value -> 0
//  2. time-based: value is seconds; volume = minutes * weight * 0.5,
//     using the default bodyweight estimate when no weight is recorded
//  3. rep-based with weight: volume = weight * reps
//  4. rep-based bodyweight: volume = 150 * reps * 0.5
//
// Pure function: every input maps to a finite non-negative number.
func SetVolume(set models.ExerciseSet) float64 {
	if set.Value == nil || *set.Value <= 0 {
		return 0
	}

	if set.IsTimeBased {
		return timeBasedVolume(set)
	}

	if set.Weight != nil && *set.Weight > 0 {
		return *set.Weight * float64(*set.Value)
	}
	return defaultBodyweight * float64(*set.Value) * intensityMultiplier
}

// timeBasedVolume estimates volume for duration sets. Weighted holds
// (e.g. weighted planks) use the recorded weight, everything else the
// default bodyweight estimate.
func timeBasedVolume(set models.ExerciseSet) float64 {
	estimatedWeight := defaultBodyweight
	if set.Weight != nil && *set.Weight > 0 {
		estimatedWeight = *set.Weight
	}

	durationMinutes := float64(*set.Value) / 60.0
	return durationMinutes * estimatedWeight * intensityMultiplier
}
