package usecase

import (
	"context"
	"log/slog"

	"api-server/app/domain"
	"api-server/app/port"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

// QuestionCount is the number of questions per quiz round.
const QuestionCount = 10

// GetEnglishQuestionsUsecase fetches one quiz round of random questions.
type GetEnglishQuestionsUsecase struct {
	words  port.EnglishWordRepository
	logger *slog.Logger
}

// NewGetEnglishQuestionsUsecase wires the question-fetch usecase.
func NewGetEnglishQuestionsUsecase(words port.EnglishWordRepository, logger *slog.Logger) *GetEnglishQuestionsUsecase {
	return &GetEnglishQuestionsUsecase{
		words:  words,
		logger: logger.With("component", "get_english_questions_usecase"),
	}
}

// Execute returns a fresh random draw of questions.
func (u *GetEnglishQuestionsUsecase) Execute(ctx context.Context) (res result.Result[[]*domain.EnglishWord]) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("panic recovered fetching questions", "panic", r)
			res = result.Failure[[]*domain.EnglishWord](apperrors.ErrServerError)
		}
	}()

	found := u.words.FindRandom(ctx, QuestionCount)
	if found.IsFailure() {
		u.logger.Warn("question fetch failed", "error_code", found.Err().ErrorCode)
		return found
	}

	return found
}
