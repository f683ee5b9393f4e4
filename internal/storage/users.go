package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/jetgym/internal/models"
	"github.com/jackc/pgx/v5"
)

// ErrEmailTaken is returned when registering with an email that already
// has an account.
var ErrEmailTaken = errors.New("email already registered")

// CreateUser inserts a user and returns the assigned ID.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash string) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id`,
		name, email, passwordHash).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrEmailTaken
	}
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	return id, nil
}

// UserByEmail retrieves a user for login. Returns ErrNotFound when the
// email is unknown.
func (db *DB) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM users
		 WHERE email = $1`,
		email)

	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

// CreateSession records a bearer-token session for a user.
func (db *DB) CreateSession(ctx context.Context, token string, userID int, expiresAt time.Time) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expiresAt)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// UserIDBySession resolves a session token to a user ID. Expired or
// unknown tokens return ErrNotFound.
func (db *DB) UserIDBySession(ctx context.Context, token string) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id FROM sessions WHERE token = $1 AND expires_at > NOW()`,
		token).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("querying session: %w", err)
	}
	return id, nil
}

// DeleteSession removes a session token (logout).
func (db *DB) DeleteSession(ctx context.Context, token string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
