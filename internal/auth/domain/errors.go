// Package domain contains authentication domain types and errors.
package domain

import (
	apperrors "github.com/allisson/forumhub/internal/errors"
)

var (
	// ErrTokenGeneration indicates the token could not be signed. Server-side
	// failure, never caused by client input.
	ErrTokenGeneration = apperrors.Wrap(apperrors.ErrInternal, "failed to generate token")

	// ErrTokenValidation is the single error for every token verification
	// failure: bad signature, wrong algorithm, wrong issuer, expired, malformed.
	ErrTokenValidation = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid or expired token")

	// ErrSubjectNotFound indicates a structurally valid token whose subject no
	// longer resolves to a user.
	ErrSubjectNotFound = apperrors.Wrap(apperrors.ErrUnauthorized, "token subject not found")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures stay indistinguishable.
	ErrInvalidCredentials = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials")
)
