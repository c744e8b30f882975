package handlers

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"api-server/app/port"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	loginUsecase port.GoogleLoginUsecase
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(loginUsecase port.GoogleLoginUsecase, v *validator.Validator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		loginUsecase: loginUsecase,
		validator:    v,
		logger:       logger.With("component", "auth_handler"),
	}
}

// GoogleLoginRequest is the request body of the Google login endpoint.
type GoogleLoginRequest struct {
	AccessToken string `json:"accessToken" validate:"required"`
}

// GoogleLogin handles POST /v1/auth/google/login. A malformed or empty
// body is indistinguishable from a missing credential for the client, so
// both map to the invalid-token error rather than a separate shape.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind login request", "error", err, "ip", c.RealIP())
		return respondError(c, apperrors.ErrInvalidToken)
	}
	if err := h.validator.Validate(&req); err != nil {
		h.logger.Warn("login request validation failed", "error", err, "ip", c.RealIP())
		return respondError(c, apperrors.ErrInvalidToken)
	}

	res := h.loginUsecase.Execute(ctx, port.LoginRequest{AccessToken: req.AccessToken})
	if res.IsFailure() {
		appErr := res.Err()
		if appErr.IsServerError() {
			h.logger.Error("login failed", "error", appErr.Error(), "ip", c.RealIP())
		} else {
			h.logger.Warn("login rejected", "error_code", appErr.ErrorCode, "ip", c.RealIP())
		}
		return respondError(c, appErr)
	}

	out := res.Value()
	return respondSuccess(c, LoginPayload{
		User:  serializeUser(out.User),
		Token: out.Token,
	})
}
