// Package usecase implements authentication business logic.
package usecase

import (
	"context"

	authDomain "github.com/allisson/forumhub/internal/auth/domain"
	authService "github.com/allisson/forumhub/internal/auth/service"
	apperrors "github.com/allisson/forumhub/internal/errors"
	userDomain "github.com/allisson/forumhub/internal/user/domain"
)

// UseCase defines the interface for authentication operations.
type UseCase interface {
	// Login exchanges credentials for a signed bearer token.
	Login(ctx context.Context, email string, password string) (string, error)
	// Authenticate resolves a bearer token to its user.
	Authenticate(ctx context.Context, tokenString string) (*userDomain.User, error)
}

// UserRepository defines the user lookups the authenticator needs.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// AuthUseCase handles login and per-request token authentication.
type AuthUseCase struct {
	userRepo        UserRepository
	tokenService    authService.TokenService
	passwordService authService.PasswordService
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	userRepo UserRepository,
	tokenService authService.TokenService,
	passwordService authService.PasswordService,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:        userRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
	}
}

// Login authenticates the credentials and issues a token. Unknown email and
// wrong password produce the same error so callers cannot probe for accounts.
func (uc *AuthUseCase) Login(ctx context.Context, email string, password string) (string, error) {
	if email == "" || password == "" {
		return "", authDomain.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return "", authDomain.ErrInvalidCredentials
		}
		return "", err
	}

	if !uc.passwordService.Compare(password, user.Password) {
		return "", authDomain.ErrInvalidCredentials
	}

	return uc.tokenService.Issue(user)
}

// Authenticate verifies the token and loads the user it designates. A valid
// token whose subject no longer exists is reported as a distinct failure.
func (uc *AuthUseCase) Authenticate(ctx context.Context, tokenString string) (*userDomain.User, error) {
	subject, err := uc.tokenService.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrSubjectNotFound
		}
		return nil, err
	}

	return user, nil
}
