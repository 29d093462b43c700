package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/forumhub/internal/auth/http/dto"
	authUseCase "github.com/allisson/forumhub/internal/auth/usecase"
	apperrors "github.com/allisson/forumhub/internal/errors"
	"github.com/allisson/forumhub/internal/httputil"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authUseCase authUseCase.UseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUC authUseCase.UseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUC,
		logger:      logger,
	}
}

// LoginHandler exchanges credentials for a bearer token.
// POST /login
//
// Any authentication failure renders a bare 401 with an empty body; the
// response never distinguishes unknown email from wrong password.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnauthorized) {
			h.logger.Debug("login failed", slog.String("client_ip", c.ClientIP()))
			c.Status(http.StatusUnauthorized)
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, Type: "Bearer"})
}
