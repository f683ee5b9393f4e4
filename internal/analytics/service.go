package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/jetgym/internal/models"
)

// ErrInvalidRange is returned when a caller asks for a non-positive
// number of weeks.
var ErrInvalidRange = errors.New("weeks back must be positive")

// muscleVolumeWindowWeeks is the trailing window for muscle-group volume.
const muscleVolumeWindowWeeks = 4

// WorkoutSource supplies workout snapshots with exercises and sets
// populated. Implementations must filter by user and date range in the
// query itself rather than handing back the whole table.
type WorkoutSource interface {
	WorkoutsInRange(ctx context.Context, userID int, start, end time.Time) ([]models.Workout, error)
	AllWorkouts(ctx context.Context, userID int) ([]models.Workout, error)
}

// Service derives analytics from workout data. It holds no state beyond
// its data source and is safe for concurrent use.
type Service struct {
	src WorkoutSource
	now func() time.Time
}

// NewService creates a Service reading from src.
func NewService(src WorkoutSource) *Service {
	return &Service{src: src, now: time.Now}
}

// NewServiceAt is NewService with a fixed clock, for tests.
func NewServiceAt(src WorkoutSource, now func() time.Time) *Service {
	return &Service{src: src, now: now}
}

// WeeklyVolume returns the weekly training-volume series for the trailing
// weeksBack weeks, oldest first.
func (s *Service) WeeklyVolume(ctx context.Context, userID, weeksBack int) ([]models.WeeklyVolume, error) {
	if weeksBack <= 0 {
		return nil, ErrInvalidRange
	}

	today := dateOnly(s.now())
	start := mondayOf(today).AddDate(0, 0, -7*(weeksBack-1))
	end := mondayOf(today).AddDate(0, 0, 6)

	workouts, err := s.src.WorkoutsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching workouts: %w", err)
	}

	return WeeklyVolumes(workouts, today, weeksBack), nil
}

// MuscleGroupVolume returns per-muscle-group volume over the trailing
// four weeks.
func (s *Service) MuscleGroupVolume(ctx context.Context, userID int) (models.MuscleVolume, error) {
	today := dateOnly(s.now())
	start := today.AddDate(0, 0, -7*muscleVolumeWindowWeeks)

	workouts, err := s.src.WorkoutsInRange(ctx, userID, start, today)
	if err != nil {
		return models.MuscleVolume{}, fmt.Errorf("fetching workouts: %w", err)
	}

	return MuscleGroupVolumes(workouts), nil
}

// PersonalRecords returns the best recorded set per distinct exercise
// name across the user's full history.
func (s *Service) PersonalRecords(ctx context.Context, userID int) ([]models.PersonalRecord, error) {
	workouts, err := s.src.AllWorkouts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching workouts: %w", err)
	}

	return PersonalRecords(workouts), nil
}

// ConsistencyInsight returns the consistency report for the trailing
// weeksBack weeks.
func (s *Service) ConsistencyInsight(ctx context.Context, userID, weeksBack int) (models.ConsistencyInsight, error) {
	if weeksBack <= 0 {
		return models.ConsistencyInsight{}, ErrInvalidRange
	}

	today := dateOnly(s.now())
	start := mondayOf(today).AddDate(0, 0, -7*(weeksBack-1))
	end := mondayOf(today).AddDate(0, 0, 6)

	workouts, err := s.src.WorkoutsInRange(ctx, userID, start, end)
	if err != nil {
		return models.ConsistencyInsight{}, fmt.Errorf("fetching workouts: %w", err)
	}

	return BuildConsistencyInsight(workouts, today, weeksBack), nil
}

// DailyWorkoutsCurrentWeek returns seven workout counts for the
// Sunday-start week containing today.
func (s *Service) DailyWorkoutsCurrentWeek(ctx context.Context, userID int) ([]int, error) {
	today := dateOnly(s.now())
	start := sundayOf(today)
	end := start.AddDate(0, 0, 6)

	workouts, err := s.src.WorkoutsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching workouts: %w", err)
	}

	return DailyWorkouts(workouts, today), nil
}

// WorkoutsPerWeekOfYear returns workout counts keyed by ISO week number
// for the trailing weeksBack weeks.
func (s *Service) WorkoutsPerWeekOfYear(ctx context.Context, userID, weeksBack int) (map[int]int, error) {
	if weeksBack <= 0 {
		return nil, ErrInvalidRange
	}

	today := dateOnly(s.now())
	start := mondayOf(today).AddDate(0, 0, -7*(weeksBack-1))

	workouts, err := s.src.WorkoutsInRange(ctx, userID, start, today)
	if err != nil {
		return nil, fmt.Errorf("fetching workouts: %w", err)
	}

	return WorkoutsPerWeekOfYear(workouts, today, weeksBack), nil
}
