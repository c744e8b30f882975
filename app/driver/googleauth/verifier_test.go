package googleauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-server/app/config"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/logger"
)

func newTestVerifier(t *testing.T, endpoint string) *Verifier {
	t.Helper()
	cfg := &config.Config{
		GoogleUserinfoURL: endpoint,
		GoogleTimeout:     2 * time.Second,
	}
	log, err := logger.New("error")
	require.NoError(t, err)
	return NewVerifier(cfg, log)
}

func TestVerifyTokenSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer valid-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"google-123","email":"taro@example.com","name":"Taro","picture":"https://example.com/p.png"}`))
	}))
	defer server.Close()

	v := newTestVerifier(t, server.URL)
	res := v.VerifyToken(context.Background(), "valid-token")

	require.True(t, res.IsSuccess())
	info := res.Value()
	assert.Equal(t, "google-123", info.ID)
	assert.Equal(t, "taro@example.com", info.Email)
	assert.Equal(t, "Taro", info.Name)
}

// Empty or whitespace-only tokens are rejected locally; the endpoint must
// never be contacted.
func TestVerifyTokenEmptyTokenSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	v := newTestVerifier(t, server.URL)

	for _, token := range []string{"", "   ", "\t\n"} {
		res := v.VerifyToken(context.Background(), token)
		require.True(t, res.IsFailure())
		assert.Equal(t, apperrors.ErrCodeInvalidToken, res.Err().Code)
	}

	assert.Equal(t, int32(0), calls.Load())
}

func TestVerifyTokenStatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode apperrors.ErrorCode
	}{
		{"expired token", http.StatusUnauthorized, `{"error":{"message":"Token expired"}}`, apperrors.ErrCodeTokenExpired},
		{"expired marker", http.StatusBadRequest, `{"error":"token_expired"}`, apperrors.ErrCodeTokenExpired},
		{"unauthorized", http.StatusUnauthorized, `{"error":"unauthorized"}`, apperrors.ErrCodeInvalidToken},
		{"invalid token marker", http.StatusBadRequest, `{"error":"invalid_token"}`, apperrors.ErrCodeInvalidToken},
		{"internal error", http.StatusInternalServerError, `{"error":"backend"}`, apperrors.ErrCodeGoogleServerError},
		{"bad gateway", http.StatusBadGateway, ``, apperrors.ErrCodeGoogleServerError},
		{"quota exhausted", http.StatusForbidden, `{"error":"quota exceeded"}`, apperrors.ErrCodeGoogleServerError},
		{"unrecognized failure", http.StatusTeapot, `{"error":"weird"}`, apperrors.ErrCodeGoogleServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			v := newTestVerifier(t, server.URL)
			res := v.VerifyToken(context.Background(), "some-token")

			require.True(t, res.IsFailure())
			assert.Equal(t, tt.wantCode, res.Err().Code)
		})
	}
}

func TestVerifyTokenTransportFailures(t *testing.T) {
	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // closed before use

		v := newTestVerifier(t, server.URL)
		res := v.VerifyToken(context.Background(), "some-token")

		require.True(t, res.IsFailure())
		assert.Equal(t, apperrors.ErrCodeNetworkError, res.Err().Code)
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(5 * time.Second)
		}))
		defer server.Close()

		cfg := &config.Config{GoogleUserinfoURL: server.URL, GoogleTimeout: 100 * time.Millisecond}
		log, err := logger.New("error")
		require.NoError(t, err)
		v := NewVerifier(cfg, log)

		res := v.VerifyToken(context.Background(), "some-token")

		require.True(t, res.IsFailure())
		assert.Equal(t, apperrors.ErrCodeNetworkError, res.Err().Code)
	})
}

func TestVerifyTokenMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `not json at all`},
		{"missing id", `{"email":"taro@example.com"}`},
		{"missing email", `{"id":"google-123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			v := newTestVerifier(t, server.URL)
			res := v.VerifyToken(context.Background(), "some-token")

			require.True(t, res.IsFailure())
			assert.Equal(t, apperrors.ErrCodeGoogleServerError, res.Err().Code)
		})
	}
}
