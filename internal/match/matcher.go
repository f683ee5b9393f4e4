package match

import (
	"context"
	"fmt"

	"github.com/claude/jetgym/internal/models"
)

// similarityFloor is the minimum similarity a fuzzy candidate must reach.
const similarityFloor = 0.75

// shortInputLimit is the normalized length at or below which only exact
// history matches are attempted. Fuzzy matching two-character tokens
// produces too many false positives.
const shortInputLimit = 2

// HistorySource supplies a user's prior exercise names and records.
// Lookups return nil without error on a miss.
type HistorySource interface {
	DistinctExerciseNames(ctx context.Context, userID int) ([]string, error)
	FindExerciseByNormalizedName(ctx context.Context, userID int, normalized string) (*models.Exercise, error)
}

// CanonicalSource supplies the canonical-exercise dictionary. Lookups
// return nil without error on a miss.
type CanonicalSource interface {
	FindCanonicalExact(ctx context.Context, normalized string) (*models.CanonicalExercise, error)
	SearchCanonical(ctx context.Context, substring string) ([]models.CanonicalExercise, error)
}

// Match is the outcome of resolving a free-text exercise name. Exactly
// one of Exercise or Canonical is set: Exercise when the name resolved
// against the user's history, Canonical when it fell through to the
// dictionary.
type Match struct {
	Exercise  *models.Exercise
	Canonical *models.CanonicalExercise
}

// Matcher resolves free-text exercise names against user history and the
// canonical dictionary. It is stateless and safe for concurrent use.
type Matcher struct {
	history HistorySource
	canon   CanonicalSource
}

// New creates a Matcher over the given sources.
func New(history HistorySource, canon CanonicalSource) *Matcher {
	return &Matcher{history: history, canon: canon}
}

// Resolve finds the best match for name. Order of attempts: exact history
// match, fuzzy history match (bounded edit distance, similarity floor),
// canonical exact, canonical substring. Returns nil when nothing matched;
// absence of a match is not an error.
func (m *Matcher) Resolve(ctx context.Context, name string, userID int) (*Match, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return nil, nil
	}

	ex, err := m.resolveHistory(ctx, normalized, userID)
	if err != nil {
		return nil, err
	}
	if ex != nil {
		return &Match{Exercise: ex}, nil
	}

	canonical, err := m.resolveCanonical(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if canonical != nil {
		return &Match{Canonical: canonical}, nil
	}

	return nil, nil
}

// Suggest returns autocomplete candidates for a partially typed name: at
// most one suggestion from the user's history, followed by canonical
// dictionary matches deduplicated by canonical name. Inputs shorter than
// two characters yield no suggestions.
func (m *Matcher) Suggest(ctx context.Context, input string, userID int) ([]models.ExerciseSuggestion, error) {
	if len(input) < 2 {
		return []models.ExerciseSuggestion{}, nil
	}

	suggestions := []models.ExerciseSuggestion{}
	normalized := Normalize(input)

	historical, err := m.resolveHistory(ctx, normalized, userID)
	if err != nil {
		return nil, err
	}
	if historical != nil {
		suggestions = append(suggestions, models.ExerciseSuggestion{
			Name:          historical.Name,
			CanonicalName: historical.CanonicalName,
			IsHistorical:  true,
		})
	}

	canonicals, err := m.canon.SearchCanonical(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("searching canonical exercises: %w", err)
	}
	for _, c := range canonicals {
		if containsCanonical(suggestions, c.Name) {
			continue
		}
		suggestions = append(suggestions, models.ExerciseSuggestion{
			Name:          c.Name,
			CanonicalName: c.Name,
			IsHistorical:  false,
		})
	}

	return suggestions, nil
}

func containsCanonical(suggestions []models.ExerciseSuggestion, canonicalName string) bool {
	for _, s := range suggestions {
		if s.CanonicalName != "" && s.CanonicalName == canonicalName {
			return true
		}
	}
	return false
}

// resolveHistory matches against the user's prior exercise names:
// exact first, then fuzzy for inputs long enough to bound safely.
func (m *Matcher) resolveHistory(ctx context.Context, normalized string, userID int) (*models.Exercise, error) {
	if len(normalized) <= shortInputLimit {
		return m.findHistorical(ctx, userID, normalized)
	}

	names, err := m.history.DistinctExerciseNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching exercise names: %w", err)
	}

	for _, candidate := range names {
		if candidate == normalized {
			return m.findHistorical(ctx, userID, candidate)
		}
	}

	maxDistance := distanceThreshold(len(normalized))
	bestName := ""
	bestSimilarity := 0.0
	for _, candidate := range names {
		distance := Levenshtein(normalized, candidate)
		if distance > maxDistance {
			continue
		}
		similarity := Similarity(normalized, candidate)
		if similarity >= similarityFloor && similarity > bestSimilarity {
			bestName = candidate
			bestSimilarity = similarity
		}
	}

	if bestName == "" {
		return nil, nil
	}
	return m.findHistorical(ctx, userID, bestName)
}

// findHistorical looks up a single historical exercise.
func (m *Matcher) findHistorical(ctx context.Context, userID int, normalized string) (*models.Exercise, error) {
	ex, err := m.history.FindExerciseByNormalizedName(ctx, userID, normalized)
	if err != nil {
		return nil, fmt.Errorf("fetching historical exercise: %w", err)
	}
	return ex, nil
}

// resolveCanonical matches against the dictionary: exact normalized name
// first, then substring search across names, aliases, and variations.
func (m *Matcher) resolveCanonical(ctx context.Context, normalized string) (*models.CanonicalExercise, error) {
	exact, err := m.canon.FindCanonicalExact(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("fetching canonical exercise: %w", err)
	}
	if exact != nil {
		return exact, nil
	}

	matches, err := m.canon.SearchCanonical(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("searching canonical exercises: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}
