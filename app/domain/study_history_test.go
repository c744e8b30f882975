package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "api-server/app/utils/errors"
)

func TestNewStudyHistory(t *testing.T) {
	res := NewStudyHistory("user-1", "question-1", "apple", true, "りんご", "りんご")

	require.True(t, res.IsSuccess())
	h := res.Value()
	assert.Empty(t, h.ID())
	assert.Equal(t, "user-1", h.UserID())
	assert.Equal(t, "question-1", h.QuestionID())
	assert.True(t, h.IsCorrect())
	assert.False(t, h.StudiedAt().IsZero())
}

func TestNewStudyHistoryValidation(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		questionID string
		word       string
		selected   string
		correct    string
		wantCode   apperrors.ErrorCode
	}{
		{"blank user id", " ", "q1", "apple", "a", "a", apperrors.ErrCodeInvalidAnswer},
		{"blank question id", "u1", "", "apple", "a", "a", apperrors.ErrCodeInvalidQuestionID},
		{"blank word", "u1", "q1", "", "a", "a", apperrors.ErrCodeInvalidAnswer},
		{"blank selected answer", "u1", "q1", "apple", " ", "a", apperrors.ErrCodeInvalidAnswer},
		{"blank correct answer", "u1", "q1", "apple", "a", "", apperrors.ErrCodeInvalidAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewStudyHistory(tt.userID, tt.questionID, tt.word, false, tt.selected, tt.correct)
			require.True(t, res.IsFailure())
			assert.Equal(t, tt.wantCode, res.Err().Code)
		})
	}
}

func TestStudyHistorySetID(t *testing.T) {
	h := NewStudyHistory("u1", "q1", "apple", false, "みかん", "りんご").Value()

	h.SetID("storage-id")

	assert.Equal(t, "storage-id", h.ID())
}
