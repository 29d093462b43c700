package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/forumhub/internal/errors"
)

// PasswordService defines the interface for password verification.
type PasswordService interface {
	Compare(plainPassword string, hashedPassword string) bool
}

// Argon2PasswordService verifies passwords against Argon2id hashes.
type Argon2PasswordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewArgon2PasswordService creates an Argon2PasswordService with the
// interactive policy.
func NewArgon2PasswordService() (*Argon2PasswordService, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}
	return &Argon2PasswordService{hasher: hasher}, nil
}

// Compare reports whether the plain password matches the stored hash.
func (s *Argon2PasswordService) Compare(plainPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	return err == nil && ok
}
