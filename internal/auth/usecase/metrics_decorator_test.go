package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/forumhub/internal/auth/domain"
	"github.com/allisson/forumhub/internal/metrics"
	userDomain "github.com/allisson/forumhub/internal/user/domain"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockUseCase) Authenticate(ctx context.Context, token string) (*userDomain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func TestAuthUseCaseWithMetrics_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		next := new(mockUseCase)
		next.On("Login", mock.Anything, "alice@example.com", "secret-password").Return("token", nil)

		decorated := NewAuthUseCaseWithMetrics(next, metrics.NewNoOpBusinessMetrics())

		token, err := decorated.Login(context.Background(), "alice@example.com", "secret-password")
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
		next.AssertExpectations(t)
	})

	t.Run("Error_Propagated", func(t *testing.T) {
		next := new(mockUseCase)
		next.On("Login", mock.Anything, "alice@example.com", "wrong").Return("", authDomain.ErrInvalidCredentials)

		decorated := NewAuthUseCaseWithMetrics(next, metrics.NewNoOpBusinessMetrics())

		_, err := decorated.Login(context.Background(), "alice@example.com", "wrong")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		next.AssertExpectations(t)
	})
}

func TestAuthUseCaseWithMetrics_Authenticate(t *testing.T) {
	next := new(mockUseCase)
	user := &userDomain.User{ID: 1, Email: "alice@example.com"}
	next.On("Authenticate", mock.Anything, "token").Return(user, nil)

	decorated := NewAuthUseCaseWithMetrics(next, metrics.NewNoOpBusinessMetrics())

	got, err := decorated.Authenticate(context.Background(), "token")
	assert.NoError(t, err)
	assert.Equal(t, user, got)
	next.AssertExpectations(t)
}
