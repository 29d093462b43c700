package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/allisson/forumhub/internal/app"
	"github.com/allisson/forumhub/internal/config"
	userUsecase "github.com/allisson/forumhub/internal/user/usecase"
)

// RunCreateUser creates a user account from the command line. It is meant to
// bootstrap the first ADMIN user, since the POST /usuarios endpoint itself
// requires an ADMIN caller.
func RunCreateUser(ctx context.Context, name string, email string, password string, profiles []string) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	userUseCase, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	cleaned := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		if trimmed := strings.TrimSpace(profile); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	user, err := userUseCase.Create(ctx, userUsecase.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		Profiles: cleaned,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user created",
		slog.Int64("id", user.ID),
		slog.String("email", user.Email),
	)

	return nil
}
