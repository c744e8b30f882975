package port

import (
	"context"

	"api-server/app/domain"
	"api-server/app/utils/result"
)

// IdentityVerifier exchanges a bearer credential for normalized identity
// attributes from the external provider. It always returns a Result; every
// failure is classified at the point of origin (invalid/expired token,
// network fault, provider outage).
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, accessToken string) result.Result[domain.GoogleUserInfo]
}

// TokenService issues and verifies session credentials. Tokens are keyed
// on the stable application user id, never on provider-supplied data.
type TokenService interface {
	GenerateToken(userID int64) (string, error)
	VerifyToken(token string) (int64, error)
}

// LoginRequest is the input of the Google login pipeline.
type LoginRequest struct {
	AccessToken string
}

// LoginOutput is the terminal success value of the Google login pipeline.
type LoginOutput struct {
	User  *domain.User
	Token string
}

// GoogleLoginUsecase orchestrates verifier, repository and token issuance.
type GoogleLoginUsecase interface {
	Execute(ctx context.Context, req LoginRequest) result.Result[LoginOutput]
}
