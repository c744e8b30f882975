package domain

import (
	"strings"
	"time"

	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

// StudyHistory records one answered question for one user.
type StudyHistory struct {
	id             string
	userID         string
	questionID     string
	word           string
	isCorrect      bool
	selectedAnswer string
	correctAnswer  string
	studiedAt      time.Time
}

func (h *StudyHistory) ID() string             { return h.id }
func (h *StudyHistory) UserID() string         { return h.userID }
func (h *StudyHistory) QuestionID() string     { return h.questionID }
func (h *StudyHistory) Word() string           { return h.word }
func (h *StudyHistory) IsCorrect() bool        { return h.isCorrect }
func (h *StudyHistory) SelectedAnswer() string { return h.selectedAnswer }
func (h *StudyHistory) CorrectAnswer() string  { return h.correctAnswer }
func (h *StudyHistory) StudiedAt() time.Time   { return h.studiedAt }

// SetID assigns the storage id. Called by repositories after an insert.
func (h *StudyHistory) SetID(id string) { h.id = id }

// NewStudyHistory creates a history entry for a judged answer.
func NewStudyHistory(userID, questionID, word string, isCorrect bool, selectedAnswer, correctAnswer string) result.Result[*StudyHistory] {
	if validated := validateStudyHistory(userID, questionID, word, selectedAnswer, correctAnswer); validated.IsFailure() {
		return result.Failure[*StudyHistory](validated.Err())
	}
	return result.Success(&StudyHistory{
		userID:         userID,
		questionID:     questionID,
		word:           word,
		isCorrect:      isCorrect,
		selectedAnswer: selectedAnswer,
		correctAnswer:  correctAnswer,
		studiedAt:      time.Now(),
	})
}

// RestoreStudyHistoryFromDB rebuilds a history entry from storage.
func RestoreStudyHistoryFromDB(id, userID, questionID, word string, isCorrect bool, selectedAnswer, correctAnswer string, studiedAt time.Time) result.Result[*StudyHistory] {
	if validated := validateStudyHistory(userID, questionID, word, selectedAnswer, correctAnswer); validated.IsFailure() {
		return result.Failure[*StudyHistory](validated.Err())
	}
	return result.Success(&StudyHistory{
		id:             id,
		userID:         userID,
		questionID:     questionID,
		word:           word,
		isCorrect:      isCorrect,
		selectedAnswer: selectedAnswer,
		correctAnswer:  correctAnswer,
		studiedAt:      studiedAt,
	})
}

func validateStudyHistory(userID, questionID, word, selectedAnswer, correctAnswer string) result.Result[struct{}] {
	if isBlank(userID) {
		return result.Failure[struct{}](apperrors.ErrInvalidAnswer)
	}
	if isBlank(questionID) {
		return result.Failure[struct{}](apperrors.ErrInvalidQuestionID)
	}
	if isBlank(word) || isBlank(selectedAnswer) || isBlank(correctAnswer) {
		return result.Failure[struct{}](apperrors.ErrInvalidAnswer)
	}
	return result.Success(struct{}{})
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
