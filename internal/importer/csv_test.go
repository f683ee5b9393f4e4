package importer

import (
	"strings"
	"testing"
	"time"
)

const sampleCSV = `
"Push Day";"2026-02-19 16:54";"62"
"1. Bench Press · Chest"
#;KG;VALUE;DONE
1;100;8;1
2;102,5;6;1
3;95;8;0
"2. Push Up"
#;KG;VALUE;DONE
1;BW;20;1
2;BW;18;1
"3. Plank · Core"
#;KG;VALUE;DONE
1;BW;60s;1

"Leg Day";"2026-02-17 7:04";"71"
"1. Squat · Legs"
#;KG;VALUE;DONE
1;140;5;1
`

// TestParseCompleteSessions verifies parsing a multi-session CSV with
// exercises and sets. This is the happy-path test for the parser.
func TestParseCompleteSessions(t *testing.T) {
	sessions, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}

	s1 := sessions[0]
	if s1.Name != "Push Day" {
		t.Errorf("s1.Name = %q", s1.Name)
	}
	if s1.DurationMin != 62 {
		t.Errorf("s1.DurationMin = %d, want 62", s1.DurationMin)
	}
	want := time.Date(2026, 2, 19, 16, 54, 0, 0, time.UTC)
	if !s1.Date.Equal(want) {
		t.Errorf("s1.Date = %v, want %v", s1.Date, want)
	}
	if len(s1.Exercises) != 3 {
		t.Fatalf("s1 exercises = %d, want 3", len(s1.Exercises))
	}

	bench := s1.Exercises[0]
	if bench.Name != "Bench Press" || bench.MuscleGroup != "Chest" {
		t.Errorf("bench = %q/%q, want Bench Press/Chest", bench.Name, bench.MuscleGroup)
	}
	if len(bench.Sets) != 3 {
		t.Fatalf("bench sets = %d, want 3", len(bench.Sets))
	}
	if bench.Sets[1].Weight == nil || *bench.Sets[1].Weight != 102.5 {
		t.Errorf("European decimal weight not parsed: %+v", bench.Sets[1])
	}
	if bench.Sets[2].Completed {
		t.Error("third bench set should be incomplete")
	}

	pushup := s1.Exercises[1]
	if pushup.MuscleGroup != "" {
		t.Errorf("pushup muscle group = %q, want empty", pushup.MuscleGroup)
	}
	if pushup.Sets[0].Weight != nil {
		t.Errorf("BW weight = %v, want nil", *pushup.Sets[0].Weight)
	}
	if pushup.Sets[0].Value != 20 {
		t.Errorf("pushup reps = %d, want 20", pushup.Sets[0].Value)
	}

	plank := s1.Exercises[2]
	if !plank.Sets[0].TimeBased {
		t.Error("plank set should be time-based")
	}
	if plank.Sets[0].Value != 60 {
		t.Errorf("plank seconds = %d, want 60", plank.Sets[0].Value)
	}

	s2 := sessions[1]
	if s2.Name != "Leg Day" || len(s2.Exercises) != 1 {
		t.Errorf("s2 = %q with %d exercises, want Leg Day with 1", s2.Name, len(s2.Exercises))
	}
	// Single-digit hour in the session header.
	if s2.Date.Hour() != 7 || s2.Date.Minute() != 4 {
		t.Errorf("s2.Date = %v, want 07:04", s2.Date)
	}
}

// TestParseSkipsUnknownLines verifies that free-text notes between
// recognized lines do not break parsing.
func TestParseSkipsUnknownLines(t *testing.T) {
	csv := `
"Push Day";"2026-02-19 16:54";"62"
felt strong today
"1. Bench Press · Chest"
#;KG;VALUE;DONE
1;100;8;1
`
	sessions, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(sessions) != 1 || len(sessions[0].Exercises) != 1 {
		t.Fatalf("sessions = %+v, want one session with one exercise", sessions)
	}
}

// TestParseSetWithoutExercise verifies the error for set data appearing
// before any exercise header.
func TestParseSetWithoutExercise(t *testing.T) {
	csv := `
"Push Day";"2026-02-19 16:54";"62"
1;100;8;1
`
	if _, err := Parse(strings.NewReader(csv)); err == nil {
		t.Fatal("want error for set data without exercise")
	}
}

// TestParseExerciseWithoutSession verifies the error for an exercise
// header appearing before any session header.
func TestParseExerciseWithoutSession(t *testing.T) {
	csv := `"1. Bench Press · Chest"`
	if _, err := Parse(strings.NewReader(csv)); err == nil {
		t.Fatal("want error for exercise without session")
	}
}

// TestParseEmpty verifies that an empty input yields no sessions.
func TestParseEmpty(t *testing.T) {
	sessions, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %d, want 0", len(sessions))
	}
}

// TestParseWeight verifies bodyweight notation and European decimals.
func TestParseWeight(t *testing.T) {
	if w := parseWeight("BW"); w != nil {
		t.Errorf("parseWeight(BW) = %v, want nil", *w)
	}
	if w := parseWeight("-"); w != nil {
		t.Errorf("parseWeight(-) = %v, want nil", *w)
	}
	if w := parseWeight("102,5"); w == nil || *w != 102.5 {
		t.Errorf("parseWeight(102,5) = %v, want 102.5", w)
	}
	if w := parseWeight("80"); w == nil || *w != 80 {
		t.Errorf("parseWeight(80) = %v, want 80", w)
	}
}
