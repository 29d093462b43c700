package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/forumhub/internal/auth/domain"
	userDomain "github.com/allisson/forumhub/internal/user/domain"
)

// mockUserRepository is a mock implementation of UserRepository for testing.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// mockTokenService is a mock implementation of service.TokenService for testing.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(user *userDomain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

// mockPasswordService is a mock implementation of service.PasswordService for testing.
type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Compare(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	user := &userDomain.User{ID: 7, Name: "John Doe", Email: "john@example.com", Password: "hash"}

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockTokens := &mockTokenService{}
		mockPasswords := &mockPasswordService{}
		uc := NewAuthUseCase(mockRepo, mockTokens, mockPasswords)

		mockRepo.On("GetByEmail", ctx, "john@example.com").Return(user, nil)
		mockPasswords.On("Compare", "s3cret-pass", "hash").Return(true)
		mockTokens.On("Issue", user).Return("signed-token", nil)

		token, err := uc.Login(ctx, "john@example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("Error_UnknownEmail", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockTokens := &mockTokenService{}
		mockPasswords := &mockPasswordService{}
		uc := NewAuthUseCase(mockRepo, mockTokens, mockPasswords)

		mockRepo.On("GetByEmail", ctx, "missing@example.com").Return(nil, userDomain.ErrUserNotFound)

		token, err := uc.Login(ctx, "missing@example.com", "s3cret-pass")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockTokens := &mockTokenService{}
		mockPasswords := &mockPasswordService{}
		uc := NewAuthUseCase(mockRepo, mockTokens, mockPasswords)

		mockRepo.On("GetByEmail", ctx, "john@example.com").Return(user, nil)
		mockPasswords.On("Compare", "wrong-pass", "hash").Return(false)

		token, err := uc.Login(ctx, "john@example.com", "wrong-pass")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_UnknownEmailAndWrongPasswordIndistinguishable", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockTokens := &mockTokenService{}
		mockPasswords := &mockPasswordService{}
		uc := NewAuthUseCase(mockRepo, mockTokens, mockPasswords)

		mockRepo.On("GetByEmail", ctx, "missing@example.com").Return(nil, userDomain.ErrUserNotFound)
		mockRepo.On("GetByEmail", ctx, "john@example.com").Return(user, nil)
		mockPasswords.On("Compare", "wrong-pass", "hash").Return(false)

		_, errUnknown := uc.Login(ctx, "missing@example.com", "s3cret-pass")
		_, errWrong := uc.Login(ctx, "john@example.com", "wrong-pass")
		assert.Equal(t, errUnknown, errWrong)
	})

	t.Run("Error_EmptyCredentials", func(t *testing.T) {
		uc := NewAuthUseCase(&mockUserRepository{}, &mockTokenService{}, &mockPasswordService{})

		_, err := uc.Login(ctx, "", "")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_RepositoryFailure", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		uc := NewAuthUseCase(mockRepo, &mockTokenService{}, &mockPasswordService{})

		dbErr := errors.New("connection refused")
		mockRepo.On("GetByEmail", ctx, "john@example.com").Return(nil, dbErr)

		_, err := uc.Login(ctx, "john@example.com", "s3cret-pass")
		assert.NotErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()
	user := &userDomain.User{ID: 7, Name: "John Doe", Email: "john@example.com", Password: "hash"}

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockTokens := &mockTokenService{}
		uc := NewAuthUseCase(mockRepo, mockTokens, &mockPasswordService{})

		mockTokens.On("Verify", "signed-token").Return("john@example.com", nil)
		mockRepo.On("GetByEmail", ctx, "john@example.com").Return(user, nil)

		got, err := uc.Authenticate(ctx, "signed-token")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Error_InvalidToken", func(t *testing.T) {
		mockTokens := &mockTokenService{}
		uc := NewAuthUseCase(&mockUserRepository{}, mockTokens, &mockPasswordService{})

		mockTokens.On("Verify", "bad-token").Return("", authDomain.ErrTokenValidation)

		got, err := uc.Authenticate(ctx, "bad-token")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, authDomain.ErrTokenValidation)
	})

	t.Run("Error_SubjectNotFound", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockTokens := &mockTokenService{}
		uc := NewAuthUseCase(mockRepo, mockTokens, &mockPasswordService{})

		mockTokens.On("Verify", "signed-token").Return("gone@example.com", nil)
		mockRepo.On("GetByEmail", ctx, "gone@example.com").Return(nil, userDomain.ErrUserNotFound)

		got, err := uc.Authenticate(ctx, "signed-token")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, authDomain.ErrSubjectNotFound)
		assert.NotErrorIs(t, err, authDomain.ErrTokenValidation)
	})
}
