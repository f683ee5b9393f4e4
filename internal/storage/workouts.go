package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/jetgym/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertWorkout inserts a workout row.
func (db *DB) InsertWorkout(ctx context.Context, w models.Workout) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workouts (id, user_id, name, date, notes, duration_sec, completed)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		w.ID, w.UserID, w.Name, w.Date, w.Notes, w.Duration, w.Completed)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a single workout with exercises and sets populated.
// Returns ErrNotFound when the workout does not exist or belongs to
// another user.
func (db *DB) GetWorkout(ctx context.Context, workoutID uuid.UUID, userID int) (*models.Workout, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, date, notes, duration_sec, completed
		 FROM workouts
		 WHERE id = $1 AND user_id = $2`,
		workoutID, userID)

	var w models.Workout
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &w.Notes, &w.Duration, &w.Completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout: %w", err)
	}

	workouts := []models.Workout{w}
	if err := db.attachExercises(ctx, workouts); err != nil {
		return nil, err
	}
	return &workouts[0], nil
}

// WorkoutsInRange retrieves a user's workouts with date in [start, end],
// exercises and sets populated, ordered by date ascending. The range
// filter runs in SQL so callers never scan the whole table.
func (db *DB) WorkoutsInRange(ctx context.Context, userID int, start, end time.Time) ([]models.Workout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, date, notes, duration_sec, completed
		 FROM workouts
		 WHERE user_id = $1 AND date >= $2 AND date <= $3
		 ORDER BY date ASC`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	workouts, err := scanWorkoutRows(rows)
	if err != nil {
		return nil, err
	}
	if err := db.attachExercises(ctx, workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// AllWorkouts retrieves a user's full workout history with exercises and
// sets populated, ordered by date ascending.
func (db *DB) AllWorkouts(ctx context.Context, userID int) ([]models.Workout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, date, notes, duration_sec, completed
		 FROM workouts
		 WHERE user_id = $1
		 ORDER BY date ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	workouts, err := scanWorkoutRows(rows)
	if err != nil {
		return nil, err
	}
	if err := db.attachExercises(ctx, workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// UpdateWorkout updates a workout's mutable fields. Returns ErrNotFound
// when no row matched the id/user pair.
func (db *DB) UpdateWorkout(ctx context.Context, w models.Workout) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE workouts
		 SET name = $3, date = $4, notes = $5, duration_sec = $6, completed = $7
		 WHERE id = $1 AND user_id = $2`,
		w.ID, w.UserID, w.Name, w.Date, w.Notes, w.Duration, w.Completed)
	if err != nil {
		return fmt.Errorf("updating workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWorkout deletes a workout; exercises and sets cascade.
func (db *DB) DeleteWorkout(ctx context.Context, workoutID uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2`,
		workoutID, userID)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// attachExercises loads exercises and sets for the given workouts in two
// queries and assembles the one-directional ownership tree in memory.
func (db *DB) attachExercises(ctx context.Context, workouts []models.Workout) error {
	if len(workouts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(workouts))
	byID := make(map[uuid.UUID]*models.Workout, len(workouts))
	for i := range workouts {
		ids[i] = workouts[i].ID
		byID[workouts[i].ID] = &workouts[i]
	}

	exRows, err := db.Pool.Query(ctx,
		`SELECT e.id, e.workout_id, e.name, e.normalized_name, e.muscle_group,
		        e.canonical_id, COALESCE(c.name, '')
		 FROM exercises e
		 LEFT JOIN canonical_exercises c ON c.id = e.canonical_id
		 WHERE e.workout_id = ANY($1)
		 ORDER BY e.workout_id, e.position ASC`,
		ids)
	if err != nil {
		return fmt.Errorf("querying exercises: %w", err)
	}
	defer exRows.Close()

	exByID := make(map[uuid.UUID]*models.Exercise)
	var exOrder []uuid.UUID
	for exRows.Next() {
		var e models.Exercise
		if err := exRows.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.NormalizedName,
			&e.MuscleGroup, &e.CanonicalID, &e.CanonicalName); err != nil {
			return fmt.Errorf("scanning exercise: %w", err)
		}
		exByID[e.ID] = &e
		exOrder = append(exOrder, e.ID)
	}
	if err := exRows.Err(); err != nil {
		return err
	}

	if len(exOrder) > 0 {
		exIDs := make([]uuid.UUID, len(exOrder))
		copy(exIDs, exOrder)

		setRows, err := db.Pool.Query(ctx,
			`SELECT id, exercise_id, value, weight, is_time_based, completed
			 FROM exercise_sets
			 WHERE exercise_id = ANY($1)
			 ORDER BY exercise_id, position ASC`,
			exIDs)
		if err != nil {
			return fmt.Errorf("querying exercise sets: %w", err)
		}
		defer setRows.Close()

		for setRows.Next() {
			var s models.ExerciseSet
			if err := setRows.Scan(&s.ID, &s.ExerciseID, &s.Value, &s.Weight,
				&s.IsTimeBased, &s.Completed); err != nil {
				return fmt.Errorf("scanning exercise set: %w", err)
			}
			if ex, ok := exByID[s.ExerciseID]; ok {
				ex.Sets = append(ex.Sets, s)
			}
		}
		if err := setRows.Err(); err != nil {
			return err
		}
	}

	for _, id := range exOrder {
		ex := exByID[id]
		if w, ok := byID[ex.WorkoutID]; ok {
			w.Exercises = append(w.Exercises, *ex)
		}
	}
	return nil
}

func scanWorkoutRows(rows pgx.Rows) ([]models.Workout, error) {
	var result []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &w.Notes,
			&w.Duration, &w.Completed); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}
