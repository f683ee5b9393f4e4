package match

import (
	"context"
	"strings"
	"testing"

	"github.com/claude/jetgym/internal/models"
	"github.com/google/uuid"
)

// fakeHistory implements HistorySource over an in-memory list of
// exercises keyed by normalized name.
type fakeHistory struct {
	exercises map[string]*models.Exercise
}

func (f *fakeHistory) DistinctExerciseNames(_ context.Context, _ int) ([]string, error) {
	names := make([]string, 0, len(f.exercises))
	for name := range f.exercises {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeHistory) FindExerciseByNormalizedName(_ context.Context, _ int, normalized string) (*models.Exercise, error) {
	return f.exercises[normalized], nil
}

// fakeCanon implements CanonicalSource over an in-memory dictionary.
type fakeCanon struct {
	entries []models.CanonicalExercise
}

func (f *fakeCanon) FindCanonicalExact(_ context.Context, normalized string) (*models.CanonicalExercise, error) {
	for i, c := range f.entries {
		if Normalize(c.Name) == normalized {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCanon) SearchCanonical(_ context.Context, substring string) ([]models.CanonicalExercise, error) {
	var out []models.CanonicalExercise
	for _, c := range f.entries {
		if strings.Contains(Normalize(c.Name), substring) {
			out = append(out, c)
			continue
		}
		for _, alias := range c.Aliases {
			if strings.Contains(Normalize(alias), substring) {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func historyWith(names ...string) *fakeHistory {
	h := &fakeHistory{exercises: map[string]*models.Exercise{}}
	for _, name := range names {
		h.exercises[Normalize(name)] = &models.Exercise{
			ID:             uuid.New(),
			Name:           name,
			NormalizedName: Normalize(name),
		}
	}
	return h
}

var testDictionary = []models.CanonicalExercise{
	{ID: uuid.New(), Name: "Bench Press", Aliases: []string{"chest press"}},
	{ID: uuid.New(), Name: "Squat"},
	{ID: uuid.New(), Name: "Lat Pulldown"},
}

// TestResolveExactHistory verifies that an exact normalized match against
// history wins before any fuzzy or canonical lookup.
func TestResolveExactHistory(t *testing.T) {
	m := New(historyWith("Bench Press"), &fakeCanon{entries: testDictionary})

	got, err := m.Resolve(context.Background(), "  bench PRESS ", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Exercise == nil {
		t.Fatal("want a history match")
	}
	if got.Exercise.Name != "Bench Press" {
		t.Errorf("matched %q, want Bench Press", got.Exercise.Name)
	}
}

// TestResolveFuzzyHistory verifies that a typo within the edit-distance
// bound still resolves against history.
func TestResolveFuzzyHistory(t *testing.T) {
	m := New(historyWith("Bench Press"), &fakeCanon{})

	// "benchpres" is distance 1 from "benchpress", similarity 0.9.
	got, err := m.Resolve(context.Background(), "bench pres", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Exercise == nil {
		t.Fatal("want a fuzzy history match")
	}
	if got.Exercise.Name != "Bench Press" {
		t.Errorf("matched %q, want Bench Press", got.Exercise.Name)
	}
}

// TestResolveFuzzyRespectsBound verifies that candidates beyond the
// edit-distance bound never match, whatever their similarity.
func TestResolveFuzzyRespectsBound(t *testing.T) {
	m := New(historyWith("Squat"), &fakeCanon{})

	// "press" vs "squat" is distance 5, far beyond the bound of 2.
	got, err := m.Resolve(context.Background(), "press", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want no match", got)
	}
}

// TestResolveShortInputExactOnly verifies that inputs of two characters
// or fewer only ever match exactly.
func TestResolveShortInputExactOnly(t *testing.T) {
	m := New(historyWith("ab"), &fakeCanon{})

	got, err := m.Resolve(context.Background(), "ab", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Exercise == nil || got.Exercise.Name != "ab" {
		t.Fatal("want exact short match")
	}

	// One edit away, but short inputs skip fuzzy matching entirely.
	got, err = m.Resolve(context.Background(), "ac", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want no fuzzy match on short input", got)
	}
}

// TestResolveCanonicalFallback verifies the fall-through to the
// dictionary: exact first, substring second.
func TestResolveCanonicalFallback(t *testing.T) {
	m := New(historyWith(), &fakeCanon{entries: testDictionary})

	got, err := m.Resolve(context.Background(), "Lat Pulldown", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Canonical == nil || got.Canonical.Name != "Lat Pulldown" {
		t.Fatalf("got %+v, want canonical Lat Pulldown", got)
	}

	// Substring of a canonical name.
	got, err = m.Resolve(context.Background(), "pulldown", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Canonical == nil || got.Canonical.Name != "Lat Pulldown" {
		t.Fatalf("got %+v, want substring canonical match", got)
	}
}

// TestResolveNoMatch verifies that an unmatched name returns nil with no
// error.
func TestResolveNoMatch(t *testing.T) {
	m := New(historyWith(), &fakeCanon{})

	got, err := m.Resolve(context.Background(), "zzzzzz", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

// TestSuggestShortInput verifies that inputs under two characters yield
// an empty, non-nil slice.
func TestSuggestShortInput(t *testing.T) {
	m := New(historyWith("Squat"), &fakeCanon{entries: testDictionary})

	got, err := m.Suggest(context.Background(), "s", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty slice", got)
	}
}

// TestSuggestDedupByCanonicalName verifies that a historical suggestion
// suppresses the canonical entry it is linked to.
func TestSuggestDedupByCanonicalName(t *testing.T) {
	h := historyWith("Bench Press")
	h.exercises["benchpress"].CanonicalName = "Bench Press"
	m := New(h, &fakeCanon{entries: testDictionary})

	got, err := m.Suggest(context.Background(), "bench press", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1 (deduplicated): %+v", len(got), got)
	}
	if !got[0].IsHistorical {
		t.Error("surviving suggestion should be the historical one")
	}
}

// TestSuggestHistoricalFirst verifies ordering: the historical hit leads,
// canonical candidates follow.
func TestSuggestHistoricalFirst(t *testing.T) {
	m := New(historyWith("Squat"), &fakeCanon{entries: testDictionary})

	got, err := m.Suggest(context.Background(), "squat", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2: %+v", len(got), got)
	}
	if !got[0].IsHistorical || got[0].Name != "Squat" {
		t.Errorf("first suggestion = %+v, want historical Squat", got[0])
	}
	if got[1].IsHistorical || got[1].CanonicalName != "Squat" {
		t.Errorf("second suggestion = %+v, want canonical Squat", got[1])
	}
}
