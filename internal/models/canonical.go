package models

import "github.com/google/uuid"

// CanonicalExercise is one dictionary entry representing a "true" exercise
// with its known variation and alias spellings. Names are stored normalized
// (lowercase, whitespace stripped) so lookups are case/space-insensitive.
type CanonicalExercise struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Variations []string  `json:"variations,omitempty"`
	Aliases    []string  `json:"aliases,omitempty"`
}
