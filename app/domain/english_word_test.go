package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "api-server/app/utils/errors"
)

func TestNewEnglishWord(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		answer     string
		choices    []string
		difficulty int
		valid      bool
	}{
		{"valid question", "apple", "りんご", []string{"りんご", "みかん", "ぶどう", "もも"}, 2, true},
		{"minimum choices", "dog", "犬", []string{"犬", "猫"}, 1, true},
		{"blank word", "  ", "りんご", []string{"りんご", "みかん"}, 2, false},
		{"word too long", strings.Repeat("a", 101), "りんご", []string{"りんご", "みかん"}, 2, false},
		{"blank answer", "apple", "", []string{"りんご", "みかん"}, 2, false},
		{"single choice", "apple", "りんご", []string{"りんご"}, 2, false},
		{"duplicate choices", "apple", "りんご", []string{"りんご", "りんご"}, 2, false},
		{"answer not among choices", "apple", "りんご", []string{"みかん", "ぶどう"}, 2, false},
		{"difficulty too low", "apple", "りんご", []string{"りんご", "みかん"}, 0, false},
		{"difficulty too high", "apple", "りんご", []string{"りんご", "みかん"}, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewEnglishWord("q1", tt.word, tt.answer, tt.choices, tt.difficulty, "fruits")
			if tt.valid {
				require.True(t, res.IsSuccess())
				assert.Equal(t, tt.word, res.Value().Word())
			} else {
				require.True(t, res.IsFailure())
				assert.Equal(t, apperrors.ErrCodeInvalidAnswer, res.Err().Code)
			}
		})
	}
}

func TestChoicesReturnsCopy(t *testing.T) {
	word := NewEnglishWord("q1", "apple", "りんご", []string{"りんご", "みかん"}, 1, "").Value()

	choices := word.Choices()
	choices[0] = "tampered"

	assert.Equal(t, []string{"りんご", "みかん"}, word.Choices())
}

func TestIsCorrectAnswer(t *testing.T) {
	word := NewEnglishWord("q1", "apple", "りんご", []string{"りんご", "みかん"}, 1, "").Value()

	assert.True(t, word.IsCorrectAnswer("りんご"))
	assert.False(t, word.IsCorrectAnswer("みかん"))
	assert.False(t, word.IsCorrectAnswer(""))
}
