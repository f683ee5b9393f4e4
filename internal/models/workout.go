package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout is a single training session. It owns its exercises one-way;
// exercises refer back via WorkoutID only, never a live pointer.
type Workout struct {
	ID        uuid.UUID  `json:"id"`
	UserID    int        `json:"userId"`
	Name      string     `json:"name"`
	Date      time.Time  `json:"date"`
	Notes     string     `json:"notes,omitempty"`
	Duration  *int       `json:"duration,omitempty"`
	Completed bool       `json:"completed"`
	Exercises []Exercise `json:"exercises,omitempty"`
}

// Exercise is one movement within a workout, with its ordered sets.
type Exercise struct {
	ID             uuid.UUID     `json:"id"`
	WorkoutID      uuid.UUID     `json:"workoutId"`
	Name           string        `json:"name"`
	NormalizedName string        `json:"normalizedName,omitempty"`
	MuscleGroup    string        `json:"muscleGroup,omitempty"`
	CanonicalID    *uuid.UUID    `json:"canonicalId,omitempty"`
	CanonicalName  string        `json:"canonicalName,omitempty"`
	Sets           []ExerciseSet `json:"sets,omitempty"`
}

// ExerciseSet is a single set. Value holds reps for rep-based sets and
// duration in seconds when IsTimeBased is true. Weight is nil for
// bodyweight work.
type ExerciseSet struct {
	ID          uuid.UUID `json:"id"`
	ExerciseID  uuid.UUID `json:"exerciseId"`
	Value       *int      `json:"value"`
	Weight      *float64  `json:"weight,omitempty"`
	IsTimeBased bool      `json:"isTimeBased"`
	Completed   bool      `json:"completed"`
}
