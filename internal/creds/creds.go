// Package creds defines the credential store collaborator: user records
// looked up at login and expired after report submission.
package creds

import (
	"context"
	"strings"
)

// User account statuses.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// User is a trainee account. Username is the unique key and is stored
// normalized (lowercase, trimmed).
type User struct {
	FullName string
	Username string
	Password string
	Status   string
}

// Store is the credential store interface.
type Store interface {
	// FindByUsername looks up a user by normalized username.
	// Returns (nil, nil) when no such user exists.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// SetStatus updates a user's status.
	SetStatus(ctx context.Context, username, status string) error

	// Create adds a new user. The username must not already exist.
	Create(ctx context.Context, u *User) error

	// List returns all users ordered by username.
	List(ctx context.Context) ([]User, error)
}

// Normalize canonicalizes a username for lookup: trim and case-fold.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
