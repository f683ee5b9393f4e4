package storage

import (
	"context"
	"fmt"
	"time"
)

// DataStats holds aggregate statistics about a user's stored data.
type DataStats struct {
	TotalWorkouts   int64      `json:"totalWorkouts"`
	TotalExercises  int64      `json:"totalExercises"`
	TotalSets       int64      `json:"totalSets"`
	EarliestWorkout *time.Time `json:"earliestWorkout"`
	LatestWorkout   *time.Time `json:"latestWorkout"`
}

// GetDataStats returns aggregate statistics for a user's stored data.
func (db *DB) GetDataStats(ctx context.Context, userID int) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*), MIN(date), MAX(date) FROM workouts WHERE user_id = $1`, userID,
	).Scan(&stats.TotalWorkouts, &stats.EarliestWorkout, &stats.LatestWorkout)
	if err != nil {
		return nil, fmt.Errorf("counting workouts: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM exercises e
		 JOIN workouts w ON w.id = e.workout_id
		 WHERE w.user_id = $1`, userID,
	).Scan(&stats.TotalExercises)
	if err != nil {
		return nil, fmt.Errorf("counting exercises: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM exercise_sets s
		 JOIN exercises e ON e.id = s.exercise_id
		 JOIN workouts w ON w.id = e.workout_id
		 WHERE w.user_id = $1`, userID,
	).Scan(&stats.TotalSets)
	if err != nil {
		return nil, fmt.Errorf("counting sets: %w", err)
	}

	return stats, nil
}
