package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"api-server/app/domain"
	"api-server/app/port"
	"api-server/app/rest/render"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/logger"
	"api-server/app/utils/result"
	"api-server/app/utils/validator"
)

type mockGetQuestions struct {
	mock.Mock
}

func (m *mockGetQuestions) Execute(ctx context.Context) result.Result[[]*domain.EnglishWord] {
	args := m.Called(ctx)
	return args.Get(0).(result.Result[[]*domain.EnglishWord])
}

type mockSubmitAnswers struct {
	mock.Mock
}

func (m *mockSubmitAnswers) Execute(ctx context.Context, input port.SubmitAnswersInput) result.Result[port.SubmitAnswersOutput] {
	args := m.Called(ctx, input)
	return args.Get(0).(result.Result[port.SubmitAnswersOutput])
}

func newStudyHandler(t *testing.T, gq port.GetEnglishQuestionsUsecase, sa port.SubmitEnglishAnswersUsecase) *StudyHandler {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	return NewStudyHandler(gq, sa, validator.New(), log)
}

func testWords(t *testing.T) []*domain.EnglishWord {
	t.Helper()
	res := domain.NewEnglishWord("q1", "apple", "りんご", []string{"りんご", "みかん"}, 1, "fruits")
	require.True(t, res.IsSuccess())
	return []*domain.EnglishWord{res.Value()}
}

func TestGetQuestionsSuccess(t *testing.T) {
	gq := new(mockGetQuestions)
	gq.On("Execute", mock.Anything).Return(result.Success(testWords(t)))

	h := newStudyHandler(t, gq, new(mockSubmitAnswers))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/study/english/questions", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.GetQuestions(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Status int              `json:"status"`
		Data   QuestionsPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Questions, 1)
	assert.Equal(t, "apple", envelope.Data.Questions[0].Word)
	assert.Equal(t, "りんご", envelope.Data.Questions[0].CorrectAnswer)
	assert.Equal(t, []string{"りんご", "みかん"}, envelope.Data.Questions[0].Choices)
}

func TestGetQuestionsInsufficientPool(t *testing.T) {
	gq := new(mockGetQuestions)
	gq.On("Execute", mock.Anything).
		Return(result.Failure[[]*domain.EnglishWord](apperrors.ErrInsufficientQuestions))

	h := newStudyHandler(t, gq, new(mockSubmitAnswers))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/study/english/questions", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.GetQuestions(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope render.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 4003, envelope.ErrorCode)
}

func submitContext(body string, userID interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/study/english/answers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("auth.userID", userID)
	}
	return c, rec
}

func TestSubmitAnswersSuccess(t *testing.T) {
	sa := new(mockSubmitAnswers)
	sa.On("Execute", mock.Anything, mock.MatchedBy(func(input port.SubmitAnswersInput) bool {
		return input.UserID == "555" && len(input.Results) == 1
	})).Return(result.Success(port.SubmitAnswersOutput{Score: 1, TotalQuestions: 1}))

	h := newStudyHandler(t, new(mockGetQuestions), sa)

	body := `{"results":[{"questionId":"q1","word":"apple","isCorrect":true,"selectedAnswer":"りんご","correctAnswer":"りんご"}]}`
	c, rec := submitContext(body, int64(555))

	require.NoError(t, h.SubmitAnswers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data SubmitAnswersPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Score)
	assert.True(t, envelope.Data.Saved)
}

func TestSubmitAnswersRequiresAuthenticatedUser(t *testing.T) {
	sa := new(mockSubmitAnswers)
	h := newStudyHandler(t, new(mockGetQuestions), sa)

	c, rec := submitContext(`{"results":[]}`, nil)

	require.NoError(t, h.SubmitAnswers(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	sa.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestSubmitAnswersRejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty results", `{"results":[]}`},
		{"missing question id", `{"results":[{"word":"apple","selectedAnswer":"a","correctAnswer":"a"}]}`},
		{"malformed json", `{"results":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sa := new(mockSubmitAnswers)
			h := newStudyHandler(t, new(mockGetQuestions), sa)

			c, rec := submitContext(tt.body, int64(555))

			require.NoError(t, h.SubmitAnswers(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			sa.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}
