package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/claude/jetgym/internal/models"
)

// fakeSource is a WorkoutSource returning canned workouts and recording
// the requested range.
type fakeSource struct {
	workouts  []models.Workout
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeSource) WorkoutsInRange(_ context.Context, _ int, start, end time.Time) ([]models.Workout, error) {
	f.lastStart, f.lastEnd = start, end
	var out []models.Workout
	for _, w := range f.workouts {
		if inRange(w.Date, start, end) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeSource) AllWorkouts(_ context.Context, _ int) ([]models.Workout, error) {
	return f.workouts, nil
}

func fixedNow(today time.Time) func() time.Time {
	return func() time.Time { return today }
}

// TestServiceWeeklyVolumeRange verifies that the service fetches exactly
// the Monday-aligned window covering the requested weeks.
func TestServiceWeeklyVolumeRange(t *testing.T) {
	today := date(2024, time.July, 31) // Wednesday
	src := &fakeSource{}
	svc := NewServiceAt(src, fixedNow(today))

	series, err := svc.WeeklyVolume(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("len(series) = %d, want 3", len(series))
	}

	wantStart := date(2024, time.July, 15) // Monday two weeks back
	wantEnd := date(2024, time.August, 4)  // Sunday of the current week
	if !src.lastStart.Equal(wantStart) || !src.lastEnd.Equal(wantEnd) {
		t.Errorf("fetched range [%s, %s], want [%s, %s]",
			src.lastStart.Format("2006-01-02"), src.lastEnd.Format("2006-01-02"),
			wantStart.Format("2006-01-02"), wantEnd.Format("2006-01-02"))
	}
}

// TestServiceInvalidRange verifies that non-positive week counts are
// rejected with ErrInvalidRange on every ranged operation.
func TestServiceInvalidRange(t *testing.T) {
	svc := NewServiceAt(&fakeSource{}, fixedNow(date(2024, time.July, 31)))
	ctx := context.Background()

	if _, err := svc.WeeklyVolume(ctx, 1, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("WeeklyVolume(0 weeks) error = %v, want ErrInvalidRange", err)
	}
	if _, err := svc.ConsistencyInsight(ctx, 1, -1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("ConsistencyInsight(-1 weeks) error = %v, want ErrInvalidRange", err)
	}
	if _, err := svc.WorkoutsPerWeekOfYear(ctx, 1, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("WorkoutsPerWeekOfYear(0 weeks) error = %v, want ErrInvalidRange", err)
	}
}

// TestServiceMuscleGroupVolumeWindow verifies the fixed four-week window.
func TestServiceMuscleGroupVolumeWindow(t *testing.T) {
	today := date(2024, time.July, 31)
	src := &fakeSource{workouts: []models.Workout{
		workoutOn(date(2024, time.July, 30), "Chest", completedSet(100, 10)),
		workoutOn(date(2024, time.June, 1), "Back", completedSet(100, 10)), // outside window
	}}
	svc := NewServiceAt(src, fixedNow(today))

	mv, err := svc.MuscleGroupVolume(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !src.lastStart.Equal(date(2024, time.July, 3)) {
		t.Errorf("window start = %s, want 2024-07-03", src.lastStart.Format("2006-01-02"))
	}
	if mv.TotalVolume != 1000 {
		t.Errorf("TotalVolume = %v, want 1000 (old workout excluded)", mv.TotalVolume)
	}
	if _, ok := mv.MuscleVolumes["Back"]; ok {
		t.Error("Back volume present, want excluded by window")
	}
}

// TestServiceDailyWorkoutsCurrentWeek verifies the Sunday-start window
// and the fixed-length histogram.
func TestServiceDailyWorkoutsCurrentWeek(t *testing.T) {
	today := date(2024, time.July, 31)
	src := &fakeSource{workouts: []models.Workout{
		{Date: date(2024, time.July, 28)},
		{Date: date(2024, time.July, 31)},
	}}
	svc := NewServiceAt(src, fixedNow(today))

	counts, err := svc.DailyWorkoutsCurrentWeek(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 7 {
		t.Fatalf("len(counts) = %d, want 7", len(counts))
	}
	if counts[0] != 1 || counts[3] != 1 {
		t.Errorf("counts = %v, want Sunday and Wednesday at 1", counts)
	}
	if !src.lastStart.Equal(date(2024, time.July, 28)) {
		t.Errorf("window start = %s, want Sunday 2024-07-28", src.lastStart.Format("2006-01-02"))
	}
}

// TestServicePersonalRecordsFullHistory verifies records are computed
// over the entire history rather than a trailing window.
func TestServicePersonalRecordsFullHistory(t *testing.T) {
	src := &fakeSource{workouts: []models.Workout{
		{
			Date: date(2020, time.January, 1),
			Exercises: []models.Exercise{
				{Name: "Deadlift", Sets: []models.ExerciseSet{completedSet(300, 3)}},
			},
		},
	}}
	svc := NewServiceAt(src, fixedNow(date(2024, time.July, 31)))

	records, err := svc.PersonalRecords(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Exercise != "Deadlift" {
		t.Fatalf("records = %+v, want the 2020 deadlift", records)
	}
}
