package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/jetgym/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertExercise inserts an exercise row at the next position within its
// workout. The workout must belong to userID.
func (db *DB) InsertExercise(ctx context.Context, e models.Exercise, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO exercises (id, workout_id, name, normalized_name, muscle_group, canonical_id, position)
		 SELECT $1, w.id, $3, $4, $5, $6,
		        COALESCE((SELECT MAX(position) + 1 FROM exercises WHERE workout_id = w.id), 0)
		 FROM workouts w
		 WHERE w.id = $2 AND w.user_id = $7`,
		e.ID, e.WorkoutID, e.Name, e.NormalizedName, e.MuscleGroup, e.CanonicalID, userID)
	if err != nil {
		return fmt.Errorf("inserting exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetExercise retrieves a single exercise with its sets, checking
// ownership through the owning workout.
func (db *DB) GetExercise(ctx context.Context, exerciseID uuid.UUID, userID int) (*models.Exercise, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT e.id, e.workout_id, e.name, e.normalized_name, e.muscle_group,
		        e.canonical_id, COALESCE(c.name, '')
		 FROM exercises e
		 JOIN workouts w ON w.id = e.workout_id
		 LEFT JOIN canonical_exercises c ON c.id = e.canonical_id
		 WHERE e.id = $1 AND w.user_id = $2`,
		exerciseID, userID)

	var e models.Exercise
	err := row.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.NormalizedName,
		&e.MuscleGroup, &e.CanonicalID, &e.CanonicalName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying exercise: %w", err)
	}

	sets, err := db.setsForExercise(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	e.Sets = sets
	return &e, nil
}

// UpdateExercise updates an exercise's name, muscle group, and canonical
// reference, checking ownership through the owning workout.
func (db *DB) UpdateExercise(ctx context.Context, e models.Exercise, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE exercises e
		 SET name = $3, normalized_name = $4, muscle_group = $5, canonical_id = $6
		 FROM workouts w
		 WHERE e.id = $1 AND e.workout_id = w.id AND w.id = $2 AND w.user_id = $7`,
		e.ID, e.WorkoutID, e.Name, e.NormalizedName, e.MuscleGroup, e.CanonicalID, userID)
	if err != nil {
		return fmt.Errorf("updating exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExercise deletes an exercise; its sets cascade.
func (db *DB) DeleteExercise(ctx context.Context, exerciseID uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM exercises e
		 USING workouts w
		 WHERE e.id = $1 AND e.workout_id = w.id AND w.user_id = $2`,
		exerciseID, userID)
	if err != nil {
		return fmt.Errorf("deleting exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ExercisesByMuscleGroup retrieves a user's exercises for one muscle
// group, sets populated, newest workout first.
func (db *DB) ExercisesByMuscleGroup(ctx context.Context, userID int, muscleGroup string) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT e.id, e.workout_id, e.name, e.normalized_name, e.muscle_group,
		        e.canonical_id, COALESCE(c.name, '')
		 FROM exercises e
		 JOIN workouts w ON w.id = e.workout_id
		 LEFT JOIN canonical_exercises c ON c.id = e.canonical_id
		 WHERE w.user_id = $1 AND e.muscle_group = $2
		 ORDER BY w.date DESC, e.position ASC`,
		userID, muscleGroup)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.NormalizedName,
			&e.MuscleGroup, &e.CanonicalID, &e.CanonicalName); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// DistinctExerciseNames returns the distinct normalized exercise names in
// a user's history.
func (db *DB) DistinctExerciseNames(ctx context.Context, userID int) ([]string, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT DISTINCT e.normalized_name
		 FROM exercises e
		 JOIN workouts w ON w.id = e.workout_id
		 WHERE w.user_id = $1 AND e.normalized_name <> ''
		 ORDER BY e.normalized_name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercise names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning exercise name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// FindExerciseByNormalizedName returns the user's most recent exercise
// with the given normalized name, or nil when none exists.
func (db *DB) FindExerciseByNormalizedName(ctx context.Context, userID int, normalized string) (*models.Exercise, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT e.id, e.workout_id, e.name, e.normalized_name, e.muscle_group,
		        e.canonical_id, COALESCE(c.name, '')
		 FROM exercises e
		 JOIN workouts w ON w.id = e.workout_id
		 LEFT JOIN canonical_exercises c ON c.id = e.canonical_id
		 WHERE w.user_id = $1 AND e.normalized_name = $2
		 ORDER BY w.date DESC
		 LIMIT 1`,
		userID, normalized)

	var e models.Exercise
	err := row.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.NormalizedName,
		&e.MuscleGroup, &e.CanonicalID, &e.CanonicalName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying exercise by name: %w", err)
	}
	return &e, nil
}

func (db *DB) setsForExercise(ctx context.Context, exerciseID uuid.UUID) ([]models.ExerciseSet, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, exercise_id, value, weight, is_time_based, completed
		 FROM exercise_sets
		 WHERE exercise_id = $1
		 ORDER BY position ASC`,
		exerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying exercise sets: %w", err)
	}
	defer rows.Close()

	var sets []models.ExerciseSet
	for rows.Next() {
		var s models.ExerciseSet
		if err := rows.Scan(&s.ID, &s.ExerciseID, &s.Value, &s.Weight,
			&s.IsTimeBased, &s.Completed); err != nil {
			return nil, fmt.Errorf("scanning exercise set: %w", err)
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}
