package port

import (
	"context"

	"api-server/app/domain"
	"api-server/app/utils/result"
)

// EnglishWordRepository is the persistence contract for quiz questions.
type EnglishWordRepository interface {
	// FindRandom returns n random questions, failing with
	// INSUFFICIENT_QUESTIONS when fewer are available.
	FindRandom(ctx context.Context, n int) result.Result[[]*domain.EnglishWord]

	// FindByID returns Success(nil) when the question does not exist.
	FindByID(ctx context.Context, id string) result.Result[*domain.EnglishWord]
}

// StudyHistoryRepository is the persistence contract for answer records.
type StudyHistoryRepository interface {
	BulkSave(ctx context.Context, histories []*domain.StudyHistory) result.Result[[]*domain.StudyHistory]
	FindByUserID(ctx context.Context, userID string) result.Result[[]*domain.StudyHistory]
}

// AnswerResult is one client-judged answer.
type AnswerResult struct {
	QuestionID     string
	Word           string
	IsCorrect      bool
	SelectedAnswer string
	CorrectAnswer  string
}

// SubmitAnswersInput carries a batch of judged answers for one user.
type SubmitAnswersInput struct {
	UserID  string
	Results []AnswerResult
}

// SubmitAnswersOutput echoes the results with the computed score.
type SubmitAnswersOutput struct {
	Results        []AnswerResult
	Score          int
	TotalQuestions int
}

// GetEnglishQuestionsUsecase fetches a quiz round.
type GetEnglishQuestionsUsecase interface {
	Execute(ctx context.Context) result.Result[[]*domain.EnglishWord]
}

// SubmitEnglishAnswersUsecase records a finished quiz round.
type SubmitEnglishAnswersUsecase interface {
	Execute(ctx context.Context, input SubmitAnswersInput) result.Result[SubmitAnswersOutput]
}
