package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"api-server/app/config"
	"api-server/app/domain"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

// Verifier exchanges a Google OAuth bearer token for the caller's identity
// attributes via the userinfo endpoint. One outbound call per invocation,
// no retries (verification is a pure read), bounded by the configured
// timeout. It never panics across its boundary: every outcome is a Result.
type Verifier struct {
	client   *http.Client
	endpoint string
	logger   *slog.Logger
}

// NewVerifier creates a verifier against the configured userinfo endpoint.
func NewVerifier(cfg *config.Config, logger *slog.Logger) *Verifier {
	return &Verifier{
		client:   &http.Client{Timeout: cfg.GoogleTimeout},
		endpoint: cfg.GoogleUserinfoURL,
		logger:   logger.With("component", "google_verifier"),
	}
}

// VerifyToken resolves the bearer token to a normalized identity, or a
// classified failure. Empty and whitespace-only tokens are rejected
// locally without a network call.
func (v *Verifier) VerifyToken(ctx context.Context, accessToken string) result.Result[domain.GoogleUserInfo] {
	if strings.TrimSpace(accessToken) == "" {
		v.logger.Warn("empty access token provided")
		return result.Failure[domain.GoogleUserInfo](apperrors.ErrInvalidToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		v.logger.Error("failed to build userinfo request", "error", err)
		return result.Failure[domain.GoogleUserInfo](apperrors.ErrGoogleServerError.WithCause(err))
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return result.Failure[domain.GoogleUserInfo](v.classifyTransportError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		v.logger.Error("failed to read userinfo response", "error", err)
		return result.Failure[domain.GoogleUserInfo](apperrors.ErrNetworkError.WithCause(err))
	}

	if resp.StatusCode != http.StatusOK {
		return result.Failure[domain.GoogleUserInfo](v.classifyStatusError(resp.StatusCode, string(body)))
	}

	var info domain.GoogleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		v.logger.Error("failed to decode userinfo response", "error", err)
		return result.Failure[domain.GoogleUserInfo](apperrors.ErrGoogleServerError.WithCause(err))
	}

	if info.ID == "" || info.Email == "" {
		v.logger.Error("userinfo response missing required fields")
		return result.Failure[domain.GoogleUserInfo](apperrors.ErrGoogleServerError)
	}

	v.logger.Info("google token verification successful", "email", info.Email)
	return result.Success(info)
}

// classifyTransportError maps connection-level failures. Timeouts, DNS and
// connection faults are the network's fault; everything else is treated as
// a provider-side failure.
func (v *Verifier) classifyTransportError(err error) *apperrors.AppError {
	v.logger.Error("userinfo request failed", "error", err)

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ErrNetworkError.WithCause(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.ErrNetworkError.WithCause(err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no such host"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "network"):
		return apperrors.ErrNetworkError.WithCause(err)
	default:
		return apperrors.ErrGoogleServerError.WithCause(err)
	}
}

// classifyStatusError maps non-200 provider responses to the closed error
// taxonomy. Unrecognized failures default to GOOGLE_SERVER_ERROR: unknown
// failures are treated as the provider's fault, not the caller's.
func (v *Verifier) classifyStatusError(statusCode int, body string) *apperrors.AppError {
	v.logger.Error("userinfo request rejected", "status", statusCode, "body", truncate(body, 256))

	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, "expired") || strings.Contains(lower, "token_expired"):
		return apperrors.ErrTokenExpired
	case statusCode == http.StatusUnauthorized || strings.Contains(lower, "invalid_token"):
		return apperrors.ErrInvalidToken
	case statusCode >= http.StatusInternalServerError || strings.Contains(lower, "quota"):
		return apperrors.ErrGoogleServerError
	default:
		return apperrors.ErrGoogleServerError.WithCause(fmt.Errorf("unexpected userinfo status %d", statusCode))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
