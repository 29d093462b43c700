package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/forumhub/internal/errors"
	"github.com/allisson/forumhub/internal/httputil"
)

// Access is the level of access a policy rule requires.
type Access int

const (
	// Public routes need no authenticated user.
	Public Access = iota
	// Authenticated routes need any authenticated user.
	Authenticated
	// RoleAdmin routes need a user carrying the ADMIN profile.
	RoleAdmin
)

const adminRole = "ADMIN"

// Rule matches requests by method and path pattern. A pattern ending in "/**"
// matches the base path itself and any sub-path. Methods is empty for "any".
type Rule struct {
	Methods []string
	Pattern string
	Access  Access
}

// DefaultRules returns the access policy, evaluated top-to-bottom with first
// match winning. Requests matching no rule require an authenticated user.
func DefaultRules() []Rule {
	return []Rule{
		{Methods: []string{http.MethodPost}, Pattern: "/login", Access: Public},
		{Methods: []string{http.MethodGet}, Pattern: "/health", Access: Public},
		{Methods: []string{http.MethodGet}, Pattern: "/topicos/**", Access: Public},
		{Methods: []string{http.MethodPost, http.MethodPut, http.MethodDelete}, Pattern: "/topicos/**", Access: Authenticated},
		{Methods: []string{http.MethodGet}, Pattern: "/respostas/**", Access: Public},
		{Methods: []string{http.MethodPost, http.MethodPut, http.MethodDelete}, Pattern: "/respostas/**", Access: Authenticated},
		{Methods: []string{http.MethodGet}, Pattern: "/cursos/**", Access: Public},
		{Methods: []string{http.MethodPost, http.MethodPut, http.MethodDelete}, Pattern: "/cursos/**", Access: RoleAdmin},
		{Methods: []string{http.MethodGet}, Pattern: "/usuarios", Access: Public},
		{Methods: []string{http.MethodGet}, Pattern: "/usuarios/**", Access: Authenticated},
		{Methods: []string{http.MethodPost}, Pattern: "/usuarios", Access: RoleAdmin},
		{Methods: []string{http.MethodPut}, Pattern: "/usuarios/**", Access: Authenticated},
		{Methods: []string{http.MethodDelete}, Pattern: "/usuarios/**", Access: RoleAdmin},
	}
}

// Matches reports whether the rule applies to the request.
func (r Rule) Matches(method string, path string) bool {
	if len(r.Methods) > 0 {
		found := false
		for _, m := range r.Methods {
			if m == method {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return matchPattern(r.Pattern, path)
}

// matchPattern matches a path against a pattern. "/x/**" matches "/x" and
// anything under "/x/"; other patterns match exactly.
func matchPattern(pattern string, path string) bool {
	if base, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == base || strings.HasPrefix(path, base+"/")
	}
	return pattern == path
}

// AuthorizationMiddleware enforces the access policy. It runs after the
// authentication middleware and rejects requests before any handler, so
// denial never reveals whether the underlying resource exists.
//
// Missing authenticated user renders 401; insufficient role renders 403.
func AuthorizationMiddleware(rules []Rule, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		access := requiredAccess(rules, c.Request.Method, c.Request.URL.Path)
		if access == Public {
			c.Next()
			return
		}

		user, ok := GetUser(c.Request.Context())
		if !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if access == RoleAdmin && !user.HasRole(adminRole) {
			logger.Debug("authorization denied",
				slog.Int64("user_id", user.ID),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
			)
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// requiredAccess finds the first matching rule, defaulting to Authenticated.
func requiredAccess(rules []Rule, method string, path string) Access {
	for _, rule := range rules {
		if rule.Matches(method, path) {
			return rule.Access
		}
	}
	return Authenticated
}
