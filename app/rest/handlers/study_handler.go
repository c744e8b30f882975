package handlers

import (
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"

	"api-server/app/domain"
	"api-server/app/port"
	"api-server/app/rest/middleware"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/validator"
)

// StudyHandler handles the English study quiz endpoints.
type StudyHandler struct {
	getQuestions  port.GetEnglishQuestionsUsecase
	submitAnswers port.SubmitEnglishAnswersUsecase
	validator     *validator.Validator
	logger        *slog.Logger
}

// NewStudyHandler creates a new study handler.
func NewStudyHandler(
	getQuestions port.GetEnglishQuestionsUsecase,
	submitAnswers port.SubmitEnglishAnswersUsecase,
	v *validator.Validator,
	logger *slog.Logger,
) *StudyHandler {
	return &StudyHandler{
		getQuestions:  getQuestions,
		submitAnswers: submitAnswers,
		validator:     v,
		logger:        logger.With("component", "study_handler"),
	}
}

// QuestionPayload is the wire representation of one quiz question. The
// correct answer is part of the payload: judging happens on the client,
// which reports the outcome back with the submission.
type QuestionPayload struct {
	ID            string   `json:"id"`
	Word          string   `json:"word"`
	CorrectAnswer string   `json:"correctAnswer"`
	Choices       []string `json:"choices"`
	Difficulty    int      `json:"difficulty"`
	Category      string   `json:"category,omitempty"`
}

// QuestionsPayload is the data section of a question-fetch response.
type QuestionsPayload struct {
	Questions []QuestionPayload `json:"questions"`
}

// AnswerRequest is one judged answer in a submission.
type AnswerRequest struct {
	QuestionID     string `json:"questionId" validate:"required"`
	Word           string `json:"word" validate:"required"`
	IsCorrect      bool   `json:"isCorrect"`
	SelectedAnswer string `json:"selectedAnswer" validate:"required"`
	CorrectAnswer  string `json:"correctAnswer" validate:"required"`
}

// SubmitAnswersRequest is the request body of the answer submission endpoint.
type SubmitAnswersRequest struct {
	Results []AnswerRequest `json:"results" validate:"required,min=1,dive"`
}

// SubmitAnswersPayload is the data section of a submission response.
type SubmitAnswersPayload struct {
	Score          int  `json:"score"`
	TotalQuestions int  `json:"totalQuestions"`
	Saved          bool `json:"saved"`
}

// GetQuestions handles GET /v1/study/english/questions.
func (h *StudyHandler) GetQuestions(c echo.Context) error {
	ctx := c.Request().Context()

	res := h.getQuestions.Execute(ctx)
	if res.IsFailure() {
		appErr := res.Err()
		h.logger.Error("question fetch failed", "error", appErr.Error())
		return respondError(c, appErr)
	}

	words := res.Value()
	payload := QuestionsPayload{Questions: make([]QuestionPayload, 0, len(words))}
	for _, w := range words {
		payload.Questions = append(payload.Questions, serializeQuestion(w))
	}

	return respondSuccess(c, payload)
}

// SubmitAnswers handles POST /v1/study/english/answers. The authenticated
// user id comes from the session token, never from the body.
func (h *StudyHandler) SubmitAnswers(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return respondError(c, apperrors.ErrInvalidToken)
	}

	var req SubmitAnswersRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind answer submission", "error", err)
		return respondError(c, apperrors.ErrInvalidAnswer)
	}
	if err := h.validator.Validate(&req); err != nil {
		h.logger.Warn("answer submission validation failed", "error", err)
		return respondError(c, apperrors.ErrInvalidAnswer)
	}

	input := port.SubmitAnswersInput{
		UserID:  strconv.FormatInt(userID, 10),
		Results: make([]port.AnswerResult, 0, len(req.Results)),
	}
	for _, a := range req.Results {
		input.Results = append(input.Results, port.AnswerResult{
			QuestionID:     a.QuestionID,
			Word:           a.Word,
			IsCorrect:      a.IsCorrect,
			SelectedAnswer: a.SelectedAnswer,
			CorrectAnswer:  a.CorrectAnswer,
		})
	}

	res := h.submitAnswers.Execute(ctx, input)
	if res.IsFailure() {
		appErr := res.Err()
		if appErr.IsServerError() {
			h.logger.Error("answer submission failed", "error", appErr.Error())
		}
		return respondError(c, appErr)
	}

	out := res.Value()
	return respondSuccess(c, SubmitAnswersPayload{
		Score:          out.Score,
		TotalQuestions: out.TotalQuestions,
		Saved:          true,
	})
}

func serializeQuestion(w *domain.EnglishWord) QuestionPayload {
	return QuestionPayload{
		ID:            w.ID(),
		Word:          w.Word(),
		CorrectAnswer: w.CorrectAnswer(),
		Choices:       w.Choices(),
		Difficulty:    w.Difficulty(),
		Category:      w.Category(),
	}
}
