package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterSyncError(t *testing.T) {
	cause := fmt.Errorf("%w: connection reset", ErrStoreUnavailable)
	err := fmt.Errorf("like: %w", NewCounterSyncError(42, cause))

	assert.ErrorIs(t, err, ErrCounterSyncFailed)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)

	var cse *CounterSyncError
	assert.True(t, errors.As(err, &cse))
	assert.EqualValues(t, 42, cse.TuitID)
	assert.Contains(t, err.Error(), "tuit 42")
}

func TestHelpers(t *testing.T) {
	assert.ErrorIs(t, Invalid("user %d cannot follow themselves", 7), ErrInvalidOperation)
	assert.ErrorIs(t, NotFound("tuit %d", 7), ErrNotFound)

	assert.True(t, IsRetryable(fmt.Errorf("x: %w", ErrStoreUnavailable)))
	assert.True(t, IsRetryable(NewCounterSyncError(1, errors.New("boom"))))
	assert.False(t, IsRetryable(ErrDuplicateKey))
	assert.False(t, IsRetryable(nil))
}
