// Package domain defines the user and profile entities of the forum.
package domain

import (
	"github.com/allisson/forumhub/internal/errors"
)

// Profile represents an access profile (role) attached to a user.
// The profile name is the privilege label consulted by authorization checks.
type Profile struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// User represents a forum user. Password holds the Argon2id hash, never the
// plain secret. Every user carries at least one profile.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Profiles []Profile
}

// HasRole reports whether the user carries a profile with the given name.
// Comparison is an exact string match.
func (u *User) HasRole(role string) bool {
	for _, p := range u.Profiles {
		if p.Name == role {
			return true
		}
	}
	return false
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrProfileNotFound indicates a referenced profile does not exist.
	ErrProfileNotFound = errors.Wrap(errors.ErrNotFound, "profile not found")

	// ErrProfilesRequired indicates the user has no profile attached.
	ErrProfilesRequired = errors.Wrap(errors.ErrInvalidInput, "user must have at least one profile")
)
