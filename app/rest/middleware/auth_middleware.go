package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"api-server/app/port"
	"api-server/app/rest/render"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/token"
)

const userIDContextKey = "auth.userID"

// AuthMiddleware guards protected routes with the session token.
type AuthMiddleware struct {
	tokens port.TokenService
	logger *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(tokens port.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger.With("component", "auth_middleware"),
	}
}

// RequireAuth rejects requests without a valid bearer session token and
// stores the authenticated user id in the request context.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				m.logger.Warn("missing session token", "path", c.Request().URL.Path, "ip", c.RealIP())
				return render.Error(c, apperrors.ErrInvalidToken)
			}

			userID, err := m.tokens.VerifyToken(raw)
			if err != nil {
				appErr := apperrors.ErrInvalidToken
				if errors.Is(err, token.ErrTokenExpired) {
					appErr = apperrors.ErrTokenExpired
				}
				m.logger.Warn("session token rejected", "error", err, "ip", c.RealIP())
				return render.Error(c, appErr)
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// UserIDFrom returns the authenticated user id stored by RequireAuth.
func UserIDFrom(c echo.Context) (int64, bool) {
	userID, ok := c.Get(userIDContextKey).(int64)
	return userID, ok
}

func extractBearer(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
