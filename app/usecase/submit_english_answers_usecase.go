package usecase

import (
	"context"
	"log/slog"

	"api-server/app/domain"
	"api-server/app/port"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

// SubmitEnglishAnswersUsecase records one finished quiz round and computes
// the score.
type SubmitEnglishAnswersUsecase struct {
	histories port.StudyHistoryRepository
	logger    *slog.Logger
}

// NewSubmitEnglishAnswersUsecase wires the answer-submission usecase.
func NewSubmitEnglishAnswersUsecase(histories port.StudyHistoryRepository, logger *slog.Logger) *SubmitEnglishAnswersUsecase {
	return &SubmitEnglishAnswersUsecase{
		histories: histories,
		logger:    logger.With("component", "submit_english_answers_usecase"),
	}
}

// Execute validates the batch, persists one history entry per answer and
// returns the echoed results with the score. The whole batch is rejected
// if any single answer fails entity validation; nothing is written.
func (u *SubmitEnglishAnswersUsecase) Execute(ctx context.Context, input port.SubmitAnswersInput) (res result.Result[port.SubmitAnswersOutput]) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("panic recovered submitting answers", "panic", r)
			res = result.Failure[port.SubmitAnswersOutput](apperrors.ErrServerError)
		}
	}()

	if len(input.Results) == 0 {
		return result.Failure[port.SubmitAnswersOutput](apperrors.ErrInvalidAnswerCount)
	}

	entries := make([]*domain.StudyHistory, 0, len(input.Results))
	score := 0
	for _, answer := range input.Results {
		created := domain.NewStudyHistory(
			input.UserID,
			answer.QuestionID,
			answer.Word,
			answer.IsCorrect,
			answer.SelectedAnswer,
			answer.CorrectAnswer,
		)
		if created.IsFailure() {
			u.logger.Warn("answer rejected", "question_id", answer.QuestionID, "error_code", created.Err().ErrorCode)
			return result.Failure[port.SubmitAnswersOutput](created.Err())
		}
		entries = append(entries, created.Value())
		if answer.IsCorrect {
			score++
		}
	}

	saved := u.histories.BulkSave(ctx, entries)
	if saved.IsFailure() {
		return result.Failure[port.SubmitAnswersOutput](saved.Err())
	}

	u.logger.Info("answers submitted", "user_id", input.UserID, "score", score, "total", len(input.Results))
	return result.Success(port.SubmitAnswersOutput{
		Results:        input.Results,
		Score:          score,
		TotalQuestions: len(input.Results),
	})
}
