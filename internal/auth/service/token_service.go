// Package service provides token signing and password verification services.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/forumhub/internal/auth/domain"
	userDomain "github.com/allisson/forumhub/internal/user/domain"
)

const (
	tokenIssuer = "API Forum Hub"
	tokenTTL    = 2 * time.Hour
)

// tokenZone pins expiry computation to UTC-3, matching the deployments this
// API was written for. The absolute instant is what ends up in the exp claim.
var tokenZone = time.FixedZone("-03:00", -3*60*60)

// Claims carries the registered claims plus the user's id and display name.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Name   string `json:"nome"`
}

// TokenService defines the interface for issuing and verifying bearer tokens.
type TokenService interface {
	Issue(user *userDomain.User) (string, error)
	Verify(tokenString string) (subject string, err error)
}

// JWTTokenService issues and verifies HS256-signed JWTs.
type JWTTokenService struct {
	secret []byte
}

// NewJWTTokenService creates a JWTTokenService with the given signing secret.
func NewJWTTokenService(secret string) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret)}
}

// Issue signs a token for the user. The subject is the user's email and the
// expiry is two hours from now.
func (s *JWTTokenService) Issue(user *userDomain.User) (string, error) {
	now := time.Now().In(tokenZone)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: user.ID,
		Name:   user.Name,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", authDomain.ErrTokenGeneration
	}

	return signed, nil
}

// Verify parses and validates a token, returning its subject. Every failure
// mode collapses into the same validation error.
func (s *JWTTokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", authDomain.ErrTokenValidation
	}

	if claims.Subject == "" {
		return "", authDomain.ErrTokenValidation
	}

	return claims.Subject, nil
}
