package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error preserving the chain", func(t *testing.T) {
		wrapped := Wrap(ErrNotFound, "user not found")
		assert.True(t, Is(wrapped, ErrNotFound))
		assert.Equal(t, "user not found: not found", wrapped.Error())
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "anything"))
	})

	t.Run("double wrap keeps the sentinel", func(t *testing.T) {
		wrapped := Wrap(Wrap(ErrConflict, "duplicate email"), "create user")
		assert.True(t, Is(wrapped, ErrConflict))
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden, ErrInternal}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b))
		}
	}
}
