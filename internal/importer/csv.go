package importer

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Session is one workout parsed from a training-log CSV export, before
// it is matched against the database.
type Session struct {
	Name        string
	Date        time.Time
	DurationMin int
	Exercises   []SessionExercise
}

// SessionExercise is one exercise block within a session.
type SessionExercise struct {
	Number      int
	Name        string
	MuscleGroup string
	Sets        []SessionSet
}

// SessionSet is one logged set. Weight is nil for bodyweight work. Value
// holds reps, or seconds when TimeBased is set.
type SessionSet struct {
	Number    int
	Weight    *float64
	Value     int
	TimeBased bool
	Completed bool
}

var (
	// sessionHeaderRe matches: "Push Day";"2026-02-19 16:54";"62"
	sessionHeaderRe = regexp.MustCompile(`^"(.+)";"(\d{4}-\d{2}-\d{2}\s+\d+:\d+)";"(\d+)"$`)

	// exerciseHeaderRe matches: "1. Bench Press · Chest" (muscle group optional)
	exerciseHeaderRe = regexp.MustCompile(`^"(\d+)\.\s+(.+?)(?:\s+·\s+(\S.*?))?"$`)

	// setDataRe matches: 1;102,5;8;1 or 3;BW;45s;0
	setDataRe = regexp.MustCompile(`^(\d+);(.+);(\d+)(s?);([01])$`)

	// columnHeaderRe matches: #;KG;VALUE;DONE
	columnHeaderRe = regexp.MustCompile(`^#;KG;VALUE;DONE$`)
)

// Parse reads a training-log CSV export and returns the sessions it
// contains. Sessions are separated by blank lines; unknown lines are
// skipped so exports with notes still parse.
func Parse(r io.Reader) ([]Session, error) {
	scanner := bufio.NewScanner(r)
	var sessions []Session
	var current *Session
	var currentExercise *SessionExercise

	flushExercise := func() {
		if current != nil && currentExercise != nil {
			current.Exercises = append(current.Exercises, *currentExercise)
			currentExercise = nil
		}
	}
	flushSession := func() {
		flushExercise()
		if current != nil {
			sessions = append(sessions, *current)
			current = nil
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Blank line = session boundary
		if line == "" {
			flushSession()
			continue
		}

		if columnHeaderRe.MatchString(line) {
			continue
		}

		if m := sessionHeaderRe.FindStringSubmatch(line); m != nil {
			flushSession()
			date, err := parseSessionDate(m[2])
			if err != nil {
				return nil, fmt.Errorf("parsing session date %q: %w", m[2], err)
			}
			duration, _ := strconv.Atoi(m[3])
			current = &Session{Name: m[1], Date: date, DurationMin: duration}
			continue
		}

		if m := exerciseHeaderRe.FindStringSubmatch(line); m != nil {
			if current == nil {
				return nil, fmt.Errorf("exercise without session: %q", line)
			}
			flushExercise()
			num, _ := strconv.Atoi(m[1])
			currentExercise = &SessionExercise{
				Number:      num,
				Name:        strings.TrimSpace(m[2]),
				MuscleGroup: strings.TrimSpace(m[3]),
			}
			continue
		}

		if m := setDataRe.FindStringSubmatch(line); m != nil {
			if currentExercise == nil {
				return nil, fmt.Errorf("set data without exercise: %q", line)
			}
			setNum, _ := strconv.Atoi(m[1])
			value, _ := strconv.Atoi(m[3])
			currentExercise.Sets = append(currentExercise.Sets, SessionSet{
				Number:    setNum,
				Weight:    parseWeight(m[2]),
				Value:     value,
				TimeBased: m[4] == "s",
				Completed: m[5] == "1",
			})
			continue
		}

		// Unknown line — could be notes, skip
	}

	flushSession()
	return sessions, scanner.Err()
}

// parseSessionDate parses "2026-02-19 16:54", tolerating single-digit hours.
func parseSessionDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 3:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}

// parseWeight handles European decimals and bodyweight notation.
// "102,5" -> 102.5, "BW" or "-" -> nil.
func parseWeight(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "BW" || s == "-" || s == "" {
		return nil
	}
	w := parseEuropeanFloat(s)
	return &w
}

// parseEuropeanFloat converts a European decimal string to float64.
// "102,5" -> 102.5
func parseEuropeanFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
