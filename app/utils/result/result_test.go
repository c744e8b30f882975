package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "api-server/app/utils/errors"
)

func TestSuccess(t *testing.T) {
	res := Success(42)

	assert.True(t, res.IsSuccess())
	assert.False(t, res.IsFailure())
	assert.Equal(t, 42, res.Value())
	assert.Nil(t, res.Err())
}

func TestFailure(t *testing.T) {
	res := Failure[int](apperrors.ErrInvalidToken)

	assert.False(t, res.IsSuccess())
	assert.True(t, res.IsFailure())
	assert.Equal(t, apperrors.ErrInvalidToken, res.Err())
	assert.Zero(t, res.Value())
}

func TestFailurePanicsOnNilError(t *testing.T) {
	assert.Panics(t, func() {
		Failure[int](nil)
	})
}

func TestResultIsExclusive(t *testing.T) {
	tests := []struct {
		name    string
		res     Result[string]
		success bool
	}{
		{"success with value", Success("hello"), true},
		{"success with zero value", Success(""), true},
		{"failure", Failure[string](apperrors.ErrDatabaseError), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.success, tt.res.IsSuccess())
			assert.Equal(t, !tt.success, tt.res.IsFailure())
		})
	}
}

func TestUnwrap(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		value, err := Success("token").Unwrap()
		require.Nil(t, err)
		assert.Equal(t, "token", value)
	})

	t.Run("failure", func(t *testing.T) {
		value, err := Failure[string](apperrors.ErrUserNotFound).Unwrap()
		require.NotNil(t, err)
		assert.Empty(t, value)
		assert.Equal(t, apperrors.ErrCodeUserNotFound, err.Code)
	})
}

// A failure passed through several layers must arrive unchanged.
func TestErrorPropagatesVerbatim(t *testing.T) {
	original := Failure[int](apperrors.ErrTokenExpired)

	passedThrough := Failure[string](original.Err())

	assert.Same(t, original.Err(), passedThrough.Err())
	assert.Equal(t, apperrors.ErrCodeTokenExpired, passedThrough.Err().Code)
}
