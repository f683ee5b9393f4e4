package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases a name and strips all whitespace, so
// "Bench Press" and "benchpress" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Levenshtein computes the edit distance between two strings using the
// standard dynamic-programming recurrence with a two-row table.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// Similarity maps an edit distance onto [0,1], 1 meaning identical.
func Similarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(a, b))/float64(maxLen)
}

// distanceThreshold bounds the acceptable edit distance by input length,
// so short names cannot drift into unrelated exercises.
func distanceThreshold(inputLength int) int {
	switch {
	case inputLength <= 4:
		return 1
	case inputLength <= 7:
		return 2
	default:
		return 3
	}
}
