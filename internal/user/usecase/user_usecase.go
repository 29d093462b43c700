// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/go-pwdhash"

	"github.com/allisson/forumhub/internal/database"
	apperrors "github.com/allisson/forumhub/internal/errors"
	"github.com/allisson/forumhub/internal/user/domain"
	appValidation "github.com/allisson/forumhub/internal/validation"
)

// CreateUserInput contains the input data for user registration.
type CreateUserInput struct {
	Name     string   `json:"nome"`
	Email    string   `json:"email"`
	Password string   `json:"senha"`
	Profiles []string `json:"perfis"`
}

// UpdateUserInput contains the input data for user updates. Only name and
// password can change.
type UpdateUserInput struct {
	Name     string `json:"nome"`
	Password string `json:"senha"`
}

// UseCase defines the interface for user business logic operations.
type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository interface defines user repository operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// ProfileRepository interface defines profile repository operations.
type ProfileRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
}

// UserUseCase handles user-related business logic.
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	profileRepo    ProfileRepository
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	profileRepo ProfileRepository,
) (UseCase, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		passwordHasher: hasher,
	}, nil
}

func (uc *UserUseCase) validateCreateUserInput(input CreateUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("nome is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("nome must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("senha is required"),
			validation.Length(6, 128).Error("senha must be between 6 and 128 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create registers a new user with its profile set. Every profile name must
// reference an existing profile.
func (uc *UserUseCase) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := uc.validateCreateUserInput(input); err != nil {
		return nil, err
	}

	if len(input.Profiles) == 0 {
		return nil, domain.ErrProfilesRequired
	}

	profiles := make([]domain.Profile, 0, len(input.Profiles))
	for _, name := range input.Profiles {
		profile, err := uc.profileRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}

	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(strings.ToLower(input.Email)),
		Password: hashedPassword,
		Profiles: profiles,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}

// List retrieves a page of users.
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// Update changes a user's name and/or password. Blank fields keep their
// current value.
func (uc *UserUseCase) Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if input.Password != "" {
		if err := appValidation.WrapValidationError(validation.Validate(input.Password,
			validation.Length(6, 128).Error("senha must be between 6 and 128 characters"),
		)); err != nil {
			return nil, err
		}
		hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to hash password")
		}
		user.Password = hashedPassword
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Delete(ctx, id)
	})
}
