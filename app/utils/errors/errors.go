package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a specific failure kind within a closed family.
type ErrorCode string

const (
	// Google authentication errors
	ErrCodeInvalidToken      ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired      ErrorCode = "TOKEN_EXPIRED"
	ErrCodeNetworkError      ErrorCode = "NETWORK_ERROR"
	ErrCodeGoogleServerError ErrorCode = "GOOGLE_SERVER_ERROR"

	// User errors
	ErrCodeInvalidNameLength    ErrorCode = "INVALID_NAME_LENGTH"
	ErrCodeInvalidEmailFormat   ErrorCode = "INVALID_EMAIL_FORMAT"
	ErrCodeProviderTypeMismatch ErrorCode = "PROVIDER_TYPE_MISMATCH"
	ErrCodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserAlreadyExists    ErrorCode = "USER_ALREADY_EXISTS"

	// Server errors
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrCodeServerError   ErrorCode = "SERVER_ERROR"

	// English study errors
	ErrCodeQuestionNotFound      ErrorCode = "QUESTION_NOT_FOUND"
	ErrCodeInvalidAnswer         ErrorCode = "INVALID_ANSWER"
	ErrCodeInsufficientQuestions ErrorCode = "INSUFFICIENT_QUESTIONS"
	ErrCodeInvalidAnswerCount    ErrorCode = "INVALID_ANSWER_COUNT"
	ErrCodeInvalidQuestionID     ErrorCode = "INVALID_QUESTION_ID"
)

// AppError is the error currency of the whole pipeline. Every expected
// failure is one of the predefined members below; producers never invent
// new codes at runtime.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	ErrorCode  int       `json:"errorCode"`
	Cause      error     `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is match any AppError of the same code, so wrapped
// copies still compare equal to the predefined members.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

// WithCause returns a copy of the error carrying the given cause. The
// predefined members are shared package state and must stay immutable.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// IsServerError reports whether the error is classified as an internal
// (5xx) failure rather than a client-fixable one.
func (e *AppError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// New creates a new AppError.
func New(code ErrorCode, message string, statusCode, errorCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

// AsAppError converts an error to AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatusCode gets the HTTP status code for an error.
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Google authentication errors (3000 range)
var (
	ErrInvalidToken      = New(ErrCodeInvalidToken, "invalid token", http.StatusUnauthorized, 3000)
	ErrTokenExpired      = New(ErrCodeTokenExpired, "token has expired", http.StatusUnauthorized, 3001)
	ErrNetworkError      = New(ErrCodeNetworkError, "failed to communicate with the Google server", http.StatusInternalServerError, 3002)
	ErrGoogleServerError = New(ErrCodeGoogleServerError, "the Google server returned an error", http.StatusInternalServerError, 3003)
)

// User errors (1000 range)
var (
	ErrInvalidNameLength    = New(ErrCodeInvalidNameLength, "user name must be between 1 and 50 characters", http.StatusBadRequest, 1000)
	ErrInvalidEmailFormat   = New(ErrCodeInvalidEmailFormat, "email address format is invalid", http.StatusBadRequest, 1001)
	ErrProviderTypeMismatch = New(ErrCodeProviderTypeMismatch, "provider type cannot be changed", http.StatusBadRequest, 1002)
	ErrUserNotFound         = New(ErrCodeUserNotFound, "user not found", http.StatusNotFound, 1003)
	ErrUserAlreadyExists    = New(ErrCodeUserAlreadyExists, "user already exists for this provider identity", http.StatusConflict, 1004)
)

// Server errors (100 range)
var (
	ErrDatabaseError = New(ErrCodeDatabaseError, "database error", http.StatusInternalServerError, 100)
	ErrServerError   = New(ErrCodeServerError, "internal server error", http.StatusInternalServerError, 101)
)

// English study errors (4000 range)
var (
	ErrQuestionNotFound      = New(ErrCodeQuestionNotFound, "question not found", http.StatusNotFound, 4001)
	ErrInvalidAnswer         = New(ErrCodeInvalidAnswer, "invalid answer", http.StatusBadRequest, 4002)
	ErrInsufficientQuestions = New(ErrCodeInsufficientQuestions, "not enough questions available", http.StatusInternalServerError, 4003)
	ErrInvalidAnswerCount    = New(ErrCodeInvalidAnswerCount, "answer count does not match question count", http.StatusBadRequest, 4004)
	ErrInvalidQuestionID     = New(ErrCodeInvalidQuestionID, "question id is invalid", http.StatusBadRequest, 4005)
)
