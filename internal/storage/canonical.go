package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/jetgym/internal/models"
	"github.com/jackc/pgx/v5"
)

// FindCanonicalExact looks up a canonical exercise by its normalized name
// (lowercase, whitespace stripped). Returns nil when no entry matches.
func (db *DB) FindCanonicalExact(ctx context.Context, normalized string) (*models.CanonicalExercise, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, variations, aliases
		 FROM canonical_exercises
		 WHERE normalized_name = $1`,
		normalized)

	var c models.CanonicalExercise
	err := row.Scan(&c.ID, &c.Name, &c.Variations, &c.Aliases)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying canonical exercise: %w", err)
	}
	return &c, nil
}

// SearchCanonical finds canonical exercises whose name, any alias, or any
// variation contains the given substring, compared case- and
// space-insensitively. Ordered by name for stable results.
func (db *DB) SearchCanonical(ctx context.Context, substring string) ([]models.CanonicalExercise, error) {
	pattern := "%" + substring + "%"
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, variations, aliases
		 FROM canonical_exercises
		 WHERE normalized_name LIKE $1
		    OR EXISTS (SELECT 1 FROM unnest(aliases) a
		               WHERE replace(lower(a), ' ', '') LIKE $1)
		    OR EXISTS (SELECT 1 FROM unnest(variations) v
		               WHERE replace(lower(v), ' ', '') LIKE $1)
		 ORDER BY name ASC`,
		pattern)
	if err != nil {
		return nil, fmt.Errorf("searching canonical exercises: %w", err)
	}
	defer rows.Close()

	var result []models.CanonicalExercise
	for rows.Next() {
		var c models.CanonicalExercise
		if err := rows.Scan(&c.ID, &c.Name, &c.Variations, &c.Aliases); err != nil {
			return nil, fmt.Errorf("scanning canonical exercise: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
