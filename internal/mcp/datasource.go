package mcp

import (
	"context"
	"time"

	"github.com/claude/jetgym/internal/analytics"
	"github.com/claude/jetgym/internal/match"
	"github.com/claude/jetgym/internal/models"
	"github.com/claude/jetgym/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. LocalSource (direct
// DB access) and HTTPClient (remote via REST API) both satisfy it.
type DataSource interface {
	analytics.WorkoutSource
	SuggestExercises(ctx context.Context, input string, userID int) ([]models.ExerciseSuggestion, error)
	DataStats(ctx context.Context, userID int) (*storage.DataStats, error)
}

// LocalSource serves MCP tools straight from the database.
type LocalSource struct {
	db      *storage.DB
	matcher *match.Matcher
}

// Compile-time check: *LocalSource satisfies DataSource.
var _ DataSource = (*LocalSource)(nil)

// NewLocalSource wraps a database and matcher as a DataSource.
func NewLocalSource(db *storage.DB, matcher *match.Matcher) *LocalSource {
	return &LocalSource{db: db, matcher: matcher}
}

func (s *LocalSource) WorkoutsInRange(ctx context.Context, userID int, start, end time.Time) ([]models.Workout, error) {
	return s.db.WorkoutsInRange(ctx, userID, start, end)
}

func (s *LocalSource) AllWorkouts(ctx context.Context, userID int) ([]models.Workout, error) {
	return s.db.AllWorkouts(ctx, userID)
}

func (s *LocalSource) SuggestExercises(ctx context.Context, input string, userID int) ([]models.ExerciseSuggestion, error) {
	return s.matcher.Suggest(ctx, input, userID)
}

func (s *LocalSource) DataStats(ctx context.Context, userID int) (*storage.DataStats, error) {
	return s.db.GetDataStats(ctx, userID)
}
