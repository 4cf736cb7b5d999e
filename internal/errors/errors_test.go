package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorIs(t *testing.T) {
	sentinel := NotFound("WALLET_NOT_FOUND", "wallet not found")

	t.Run("matches itself", func(t *testing.T) {
		assert.True(t, stderrors.Is(sentinel, sentinel))
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading wallet: %w", sentinel)
		assert.True(t, stderrors.Is(wrapped, sentinel))
	})

	t.Run("different codes do not match", func(t *testing.T) {
		other := NotFound("USER_NOT_FOUND", "user not found")
		assert.False(t, stderrors.Is(sentinel, other))
	})

	t.Run("plain errors do not match", func(t *testing.T) {
		assert.False(t, stderrors.Is(stderrors.New("wallet not found"), sentinel))
	})
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrapped: %w", Conflict("DUP", "duplicate")))
	assert.True(t, ok)
	assert.Equal(t, KindConflict, kind)

	_, ok = KindOf(stderrors.New("plain"))
	assert.False(t, ok)
}
