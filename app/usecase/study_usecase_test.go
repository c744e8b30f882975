package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-server/app/domain"
	"api-server/app/driver/memory"
	"api-server/app/port"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/logger"
)

func seedWords(t *testing.T, repo *memory.EnglishWordRepository, n int) {
	t.Helper()
	words := make([]*domain.EnglishWord, 0, n)
	for i := 0; i < n; i++ {
		res := domain.NewEnglishWord(
			fmt.Sprintf("q%d", i),
			fmt.Sprintf("word%d", i),
			"answer",
			[]string{"answer", "other"},
			1,
			"test",
		)
		require.True(t, res.IsSuccess())
		words = append(words, res.Value())
	}
	repo.Seed(words)
}

func TestGetEnglishQuestions(t *testing.T) {
	log, err := logger.New("error")
	require.NoError(t, err)

	t.Run("returns a full round", func(t *testing.T) {
		repo := memory.NewEnglishWordRepository()
		seedWords(t, repo, QuestionCount+5)

		uc := NewGetEnglishQuestionsUsecase(repo, log)
		res := uc.Execute(context.Background())

		require.True(t, res.IsSuccess())
		assert.Len(t, res.Value(), QuestionCount)
	})

	t.Run("fails when the pool is too small", func(t *testing.T) {
		repo := memory.NewEnglishWordRepository()
		seedWords(t, repo, QuestionCount-1)

		uc := NewGetEnglishQuestionsUsecase(repo, log)
		res := uc.Execute(context.Background())

		require.True(t, res.IsFailure())
		assert.Equal(t, apperrors.ErrCodeInsufficientQuestions, res.Err().Code)
	})
}

func validAnswers(n int) []port.AnswerResult {
	answers := make([]port.AnswerResult, 0, n)
	for i := 0; i < n; i++ {
		answers = append(answers, port.AnswerResult{
			QuestionID:     fmt.Sprintf("q%d", i),
			Word:           fmt.Sprintf("word%d", i),
			IsCorrect:      i%2 == 0,
			SelectedAnswer: "answer",
			CorrectAnswer:  "answer",
		})
	}
	return answers
}

func TestSubmitEnglishAnswers(t *testing.T) {
	log, err := logger.New("error")
	require.NoError(t, err)

	t.Run("persists the round and scores it", func(t *testing.T) {
		histories := memory.NewStudyHistoryRepository()
		uc := NewSubmitEnglishAnswersUsecase(histories, log)

		res := uc.Execute(context.Background(), port.SubmitAnswersInput{
			UserID:  "555",
			Results: validAnswers(10),
		})

		require.True(t, res.IsSuccess())
		out := res.Value()
		assert.Equal(t, 5, out.Score)
		assert.Equal(t, 10, out.TotalQuestions)

		saved := histories.FindByUserID(context.Background(), "555")
		require.True(t, saved.IsSuccess())
		assert.Len(t, saved.Value(), 10)
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		uc := NewSubmitEnglishAnswersUsecase(memory.NewStudyHistoryRepository(), log)

		res := uc.Execute(context.Background(), port.SubmitAnswersInput{UserID: "555"})

		require.True(t, res.IsFailure())
		assert.Equal(t, apperrors.ErrCodeInvalidAnswerCount, res.Err().Code)
	})

	t.Run("rejects the whole batch on one invalid answer", func(t *testing.T) {
		histories := memory.NewStudyHistoryRepository()
		uc := NewSubmitEnglishAnswersUsecase(histories, log)

		answers := validAnswers(3)
		answers[1].QuestionID = "  "

		res := uc.Execute(context.Background(), port.SubmitAnswersInput{
			UserID:  "555",
			Results: answers,
		})

		require.True(t, res.IsFailure())
		assert.Equal(t, apperrors.ErrCodeInvalidQuestionID, res.Err().Code)

		saved := histories.FindByUserID(context.Background(), "555")
		require.True(t, saved.IsSuccess())
		assert.Empty(t, saved.Value())
	})
}
