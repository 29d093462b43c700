package usecase

import (
	"context"
	"time"

	"github.com/allisson/forumhub/internal/metrics"
	userDomain "github.com/allisson/forumhub/internal/user/domain"
)

// authUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (c *authUseCaseWithMetrics) Login(ctx context.Context, email string, password string) (string, error) {
	start := time.Now()
	token, err := c.next.Login(ctx, email, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "auth", "login", status)
	c.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return token, err
}

// Authenticate records metrics for token authentication operations.
func (c *authUseCaseWithMetrics) Authenticate(ctx context.Context, token string) (*userDomain.User, error) {
	start := time.Now()
	user, err := c.next.Authenticate(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	c.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return user, err
}
