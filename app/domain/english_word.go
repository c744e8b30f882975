package domain

import (
	"time"

	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

const (
	maxWordLength = 100
	minChoices    = 2
	minDifficulty = 1
	maxDifficulty = 5
)

// EnglishWord is a quiz question: a word, its correct translation and the
// multiple-choice options shown to the learner.
type EnglishWord struct {
	id            string
	word          string
	correctAnswer string
	choices       []string
	difficulty    int
	category      string
	createdAt     time.Time
}

func (w *EnglishWord) ID() string            { return w.id }
func (w *EnglishWord) Word() string          { return w.word }
func (w *EnglishWord) CorrectAnswer() string { return w.correctAnswer }
func (w *EnglishWord) Difficulty() int       { return w.difficulty }
func (w *EnglishWord) Category() string      { return w.category }
func (w *EnglishWord) CreatedAt() time.Time  { return w.createdAt }

// Choices returns a copy so callers cannot mutate the entity.
func (w *EnglishWord) Choices() []string {
	choices := make([]string, len(w.choices))
	copy(choices, w.choices)
	return choices
}

// IsCorrectAnswer reports whether the given answer matches the correct one.
func (w *EnglishWord) IsCorrectAnswer(answer string) bool {
	return w.correctAnswer == answer
}

// NewEnglishWord creates a new quiz question. Used by seeding and admin flows.
func NewEnglishWord(id, word, correctAnswer string, choices []string, difficulty int, category string) result.Result[*EnglishWord] {
	if validated := validateEnglishWord(word, correctAnswer, choices, difficulty); validated.IsFailure() {
		return result.Failure[*EnglishWord](validated.Err())
	}
	return result.Success(&EnglishWord{
		id:            id,
		word:          word,
		correctAnswer: correctAnswer,
		choices:       choices,
		difficulty:    difficulty,
		category:      category,
		createdAt:     time.Now(),
	})
}

// RestoreEnglishWordFromDB rebuilds a question from storage, re-validating
// against the current invariants.
func RestoreEnglishWordFromDB(id, word, correctAnswer string, choices []string, difficulty int, category string, createdAt time.Time) result.Result[*EnglishWord] {
	if validated := validateEnglishWord(word, correctAnswer, choices, difficulty); validated.IsFailure() {
		return result.Failure[*EnglishWord](validated.Err())
	}
	return result.Success(&EnglishWord{
		id:            id,
		word:          word,
		correctAnswer: correctAnswer,
		choices:       choices,
		difficulty:    difficulty,
		category:      category,
		createdAt:     createdAt,
	})
}

func validateEnglishWord(word, correctAnswer string, choices []string, difficulty int) result.Result[struct{}] {
	if isBlank(word) || len(word) > maxWordLength {
		return result.Failure[struct{}](apperrors.ErrInvalidAnswer)
	}
	if isBlank(correctAnswer) {
		return result.Failure[struct{}](apperrors.ErrInvalidAnswer)
	}
	if len(choices) < minChoices {
		return result.Failure[struct{}](apperrors.ErrInvalidAnswer)
	}
	seen := make(map[string]bool, len(choices))
	containsAnswer := false
	for _, choice := range choices {
		if seen[choice] {
			return result.Failure[struct{}](apperrors.ErrInvalidAnswer)
		}
		seen[choice] = true
		if choice == correctAnswer {
			containsAnswer = true
		}
	}
	if !containsAnswer {
		return result.Failure[struct{}](apperrors.ErrInvalidAnswer)
	}
	if difficulty < minDifficulty || difficulty > maxDifficulty {
		return result.Failure[struct{}](apperrors.ErrInvalidAnswer)
	}
	return result.Success(struct{}{})
}
