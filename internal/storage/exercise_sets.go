package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/jetgym/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertExerciseSet inserts a set at the next position within its
// exercise, checking ownership through the exercise's workout.
func (db *DB) InsertExerciseSet(ctx context.Context, s models.ExerciseSet, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO exercise_sets (id, exercise_id, value, weight, is_time_based, completed, position)
		 SELECT $1, e.id, $3, $4, $5, $6,
		        COALESCE((SELECT MAX(position) + 1 FROM exercise_sets WHERE exercise_id = e.id), 0)
		 FROM exercises e
		 JOIN workouts w ON w.id = e.workout_id
		 WHERE e.id = $2 AND w.user_id = $7`,
		s.ID, s.ExerciseID, s.Value, s.Weight, s.IsTimeBased, s.Completed, userID)
	if err != nil {
		return fmt.Errorf("inserting exercise set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetExerciseSet retrieves a single set, checking ownership.
func (db *DB) GetExerciseSet(ctx context.Context, setID uuid.UUID, userID int) (*models.ExerciseSet, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT s.id, s.exercise_id, s.value, s.weight, s.is_time_based, s.completed
		 FROM exercise_sets s
		 JOIN exercises e ON e.id = s.exercise_id
		 JOIN workouts w ON w.id = e.workout_id
		 WHERE s.id = $1 AND w.user_id = $2`,
		setID, userID)

	var s models.ExerciseSet
	err := row.Scan(&s.ID, &s.ExerciseID, &s.Value, &s.Weight, &s.IsTimeBased, &s.Completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying exercise set: %w", err)
	}
	return &s, nil
}

// UpdateExerciseSet updates a set's value, weight, and flags.
func (db *DB) UpdateExerciseSet(ctx context.Context, s models.ExerciseSet, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE exercise_sets s
		 SET value = $2, weight = $3, is_time_based = $4, completed = $5
		 FROM exercises e
		 JOIN workouts w ON w.id = e.workout_id
		 WHERE s.id = $1 AND s.exercise_id = e.id AND w.user_id = $6`,
		s.ID, s.Value, s.Weight, s.IsTimeBased, s.Completed, userID)
	if err != nil {
		return fmt.Errorf("updating exercise set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExerciseSet deletes a single set, checking ownership.
func (db *DB) DeleteExerciseSet(ctx context.Context, setID uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM exercise_sets s
		 USING exercises e, workouts w
		 WHERE s.id = $1 AND s.exercise_id = e.id AND e.workout_id = w.id AND w.user_id = $2`,
		setID, userID)
	if err != nil {
		return fmt.Errorf("deleting exercise set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
