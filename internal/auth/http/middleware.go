package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/forumhub/internal/auth/usecase"
	"github.com/allisson/forumhub/internal/httputil"
)

// AuthenticationMiddleware resolves the Bearer token on every request.
//
// Requests without an Authorization header, or with a non-Bearer scheme,
// continue anonymously; the authorization middleware decides whether the
// route tolerates that. A Bearer token that is present is always verified,
// even on public routes: presenting an invalid credential aborts with 401.
//
// On success the user is stored in the request context via WithUser.
func AuthenticationMiddleware(authUC authUseCase.UseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			c.Next()
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

		user, err := authUC.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			logger.Debug("authentication failed", slog.String("client_ip", c.ClientIP()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user))
		c.Next()
	}
}
