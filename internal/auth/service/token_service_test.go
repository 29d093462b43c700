package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/forumhub/internal/auth/domain"
	userDomain "github.com/allisson/forumhub/internal/user/domain"
)

func testUser() *userDomain.User {
	return &userDomain.User{
		ID:    7,
		Name:  "John Doe",
		Email: "john@example.com",
	}
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	svc := NewJWTTokenService("test-secret")

	tokenString, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	subject, err := svc.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", subject)
}

func TestJWTTokenService_Issue_Claims(t *testing.T) {
	svc := NewJWTTokenService("test-secret")

	tokenString, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "API Forum Hub", claims.Issuer)
	assert.Equal(t, "john@example.com", claims.Subject)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "John Doe", claims.Name)

	require.NotNil(t, claims.ExpiresAt)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 119*time.Minute)
	assert.LessOrEqual(t, remaining, 2*time.Hour)
}

func TestJWTTokenService_Verify_WrongSecret(t *testing.T) {
	tokenString, err := NewJWTTokenService("secret-a").Issue(testUser())
	require.NoError(t, err)

	_, err = NewJWTTokenService("secret-b").Verify(tokenString)
	assert.ErrorIs(t, err, authDomain.ErrTokenValidation)
}

func TestJWTTokenService_Verify_WrongIssuer(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "Another API",
			Subject:   "john@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTTokenService("test-secret").Verify(tokenString)
	assert.ErrorIs(t, err, authDomain.ErrTokenValidation)
}

func TestJWTTokenService_Verify_Expired(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "API Forum Hub",
			Subject:   "john@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTTokenService("test-secret").Verify(tokenString)
	assert.ErrorIs(t, err, authDomain.ErrTokenValidation)
}

func TestJWTTokenService_Verify_WrongAlgorithm(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "API Forum Hub",
			Subject:   "john@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTTokenService("test-secret").Verify(tokenString)
	assert.ErrorIs(t, err, authDomain.ErrTokenValidation)
}

func TestJWTTokenService_Verify_MissingExpiry(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  "API Forum Hub",
			Subject: "john@example.com",
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTTokenService("test-secret").Verify(tokenString)
	assert.ErrorIs(t, err, authDomain.ErrTokenValidation)
}

func TestJWTTokenService_Verify_Garbage(t *testing.T) {
	_, err := NewJWTTokenService("test-secret").Verify("not-a-token")
	assert.ErrorIs(t, err, authDomain.ErrTokenValidation)
}
