package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/claude/jetgym/internal/match"
	"github.com/claude/jetgym/internal/models"
	"github.com/claude/jetgym/internal/storage"
	"github.com/google/uuid"
)

// Stats tracks import progress.
type Stats struct {
	SessionsImported  int `json:"sessionsImported"`
	SessionsSkipped   int `json:"sessionsSkipped"`
	ExercisesImported int `json:"exercisesImported"`
	SetsImported      int `json:"setsImported"`
}

// Importer inserts parsed training sessions into the database, resolving
// each exercise name through the matcher on the way in.
type Importer struct {
	db      *storage.DB
	matcher *match.Matcher
	log     *slog.Logger
	dryRun  bool
}

// New creates a new Importer.
func New(db *storage.DB, matcher *match.Matcher, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, matcher: matcher, log: log, dryRun: dryRun}
}

// ImportCSV parses a CSV export and imports its sessions for the user.
func (imp *Importer) ImportCSV(ctx context.Context, r io.Reader, userID int) (*Stats, error) {
	sessions, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}
	return imp.Import(ctx, sessions, userID)
}

// Import inserts sessions for the user. A session whose name and date
// already exist is skipped, so re-running an import is safe.
func (imp *Importer) Import(ctx context.Context, sessions []Session, userID int) (*Stats, error) {
	stats := &Stats{}

	for _, session := range sessions {
		dup, err := imp.alreadyImported(ctx, session, userID)
		if err != nil {
			return stats, err
		}
		if dup {
			stats.SessionsSkipped++
			imp.log.Info("skipping session (already imported)",
				"name", session.Name, "date", session.Date.Format("2006-01-02"))
			continue
		}

		if imp.dryRun {
			stats.SessionsImported++
			continue
		}

		if err := imp.importSession(ctx, session, userID, stats); err != nil {
			return stats, fmt.Errorf("importing session %q: %w", session.Name, err)
		}
		stats.SessionsImported++
	}

	return stats, nil
}

func (imp *Importer) importSession(ctx context.Context, session Session, userID int, stats *Stats) error {
	workout := models.Workout{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      session.Name,
		Date:      session.Date,
		Completed: true,
	}
	if session.DurationMin > 0 {
		sec := session.DurationMin * 60
		workout.Duration = &sec
	}
	if err := imp.db.InsertWorkout(ctx, workout); err != nil {
		return err
	}

	for _, se := range session.Exercises {
		ex := models.Exercise{
			ID:             uuid.New(),
			WorkoutID:      workout.ID,
			Name:           se.Name,
			NormalizedName: match.Normalize(se.Name),
			MuscleGroup:    se.MuscleGroup,
		}
		if err := imp.annotate(ctx, &ex, userID); err != nil {
			return err
		}
		if err := imp.db.InsertExercise(ctx, ex, userID); err != nil {
			return err
		}
		stats.ExercisesImported++

		for _, ss := range se.Sets {
			value := ss.Value
			set := models.ExerciseSet{
				ID:          uuid.New(),
				ExerciseID:  ex.ID,
				Value:       &value,
				Weight:      ss.Weight,
				IsTimeBased: ss.TimeBased,
				Completed:   ss.Completed,
			}
			if err := imp.db.InsertExerciseSet(ctx, set, userID); err != nil {
				return err
			}
			stats.SetsImported++
		}
	}
	return nil
}

// annotate links an exercise to its canonical entry when the matcher
// finds one. A miss leaves the exercise untouched.
func (imp *Importer) annotate(ctx context.Context, ex *models.Exercise, userID int) error {
	m, err := imp.matcher.Resolve(ctx, ex.Name, userID)
	if err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	switch {
	case m.Exercise != nil:
		ex.CanonicalID = m.Exercise.CanonicalID
		ex.CanonicalName = m.Exercise.CanonicalName
		if ex.MuscleGroup == "" {
			ex.MuscleGroup = m.Exercise.MuscleGroup
		}
	case m.Canonical != nil:
		id := m.Canonical.ID
		ex.CanonicalID = &id
		ex.CanonicalName = m.Canonical.Name
	}
	return nil
}

// alreadyImported reports whether a workout with the session's name
// already exists on the session's day.
func (imp *Importer) alreadyImported(ctx context.Context, session Session, userID int) (bool, error) {
	dayStart := time.Date(session.Date.Year(), session.Date.Month(), session.Date.Day(), 0, 0, 0, 0, session.Date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	existing, err := imp.db.WorkoutsInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}
	for _, w := range existing {
		if w.Name == session.Name {
			return true, nil
		}
	}
	return false, nil
}
