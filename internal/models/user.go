package models

import "time"

// User is an account row. PasswordHash is a bcrypt hash and never leaves
// the storage/auth layers.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is a bearer-token login session.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}
