package render

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "api-server/app/utils/errors"
)

// SuccessEnvelope is the wire shape of every successful response.
type SuccessEnvelope struct {
	Status      int         `json:"status"`
	Data        interface{} `json:"data"`
	RespondedAt string      `json:"responsedAt"`
}

// ErrorEnvelope is the wire shape of every failed response. The numeric
// errorCode lets clients branch without parsing the message.
type ErrorEnvelope struct {
	Status      int    `json:"status"`
	ErrorCode   int    `json:"errorCode"`
	Message     string `json:"message"`
	RespondedAt string `json:"responsedAt"`
}

// Success renders data in the success envelope.
func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessEnvelope{
		Status:      http.StatusOK,
		Data:        data,
		RespondedAt: time.Now().Format(time.RFC3339),
	})
}

// Error renders an AppError with its own HTTP status. Internal details
// never leak: the envelope carries only the predefined code and message
// of the taxonomy member.
func Error(c echo.Context, appErr *apperrors.AppError) error {
	return c.JSON(appErr.StatusCode, ErrorEnvelope{
		Status:      appErr.StatusCode,
		ErrorCode:   appErr.ErrorCode,
		Message:     appErr.Message,
		RespondedAt: time.Now().Format(time.RFC3339),
	})
}
