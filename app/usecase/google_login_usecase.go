package usecase

import (
	"context"
	"log/slog"

	"api-server/app/domain"
	"api-server/app/port"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

// GoogleLoginUsecase runs the login pipeline: verify the provider token,
// find or create the user, refresh stored profile data and issue a session
// token. Every outcome crosses the boundary as a Result; a panic anywhere
// inside the pipeline is converted to SERVER_ERROR.
type GoogleLoginUsecase struct {
	verifier port.IdentityVerifier
	users    port.UserRepository
	tokens   port.TokenService
	logger   *slog.Logger
}

// NewGoogleLoginUsecase wires the login pipeline.
func NewGoogleLoginUsecase(
	verifier port.IdentityVerifier,
	users port.UserRepository,
	tokens port.TokenService,
	logger *slog.Logger,
) *GoogleLoginUsecase {
	return &GoogleLoginUsecase{
		verifier: verifier,
		users:    users,
		tokens:   tokens,
		logger:   logger.With("component", "google_login_usecase"),
	}
}

// Execute performs one login attempt. Verification failures short-circuit
// before any repository access; the user returned on success always
// reflects the freshest valid profile data available.
func (u *GoogleLoginUsecase) Execute(ctx context.Context, req port.LoginRequest) (res result.Result[port.LoginOutput]) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("panic recovered in login pipeline", "panic", r)
			res = result.Failure[port.LoginOutput](apperrors.ErrServerError)
		}
	}()

	verified := u.verifier.VerifyToken(ctx, req.AccessToken)
	if verified.IsFailure() {
		u.logger.Warn("token verification failed", "error_code", verified.Err().ErrorCode)
		return result.Failure[port.LoginOutput](verified.Err())
	}

	info := verified.Value()
	providerInfo := domain.ProviderUserInfo{
		Type:    domain.ProviderTypeGoogle,
		ID:      info.ID,
		Name:    info.Name,
		Email:   info.Email,
		Picture: info.Picture,
	}

	resolved := u.resolveUser(ctx, providerInfo)
	if resolved.IsFailure() {
		return result.Failure[port.LoginOutput](resolved.Err())
	}
	user := resolved.Value()

	token, err := u.tokens.GenerateToken(user.UserID())
	if err != nil {
		u.logger.Error("session token generation failed", "error", err)
		return result.Failure[port.LoginOutput](apperrors.ErrServerError.WithCause(err))
	}

	u.logger.Info("login successful", "user_id", user.UserID())
	return result.Success(port.LoginOutput{User: user, Token: token})
}

// resolveUser finds the user by provider id, creating on first login and
// refreshing the stored profile on every later one.
func (u *GoogleLoginUsecase) resolveUser(ctx context.Context, info domain.ProviderUserInfo) result.Result[*domain.User] {
	found := u.users.FindOne(ctx, port.UserQuery{ProviderID: info.ID})
	if found.IsFailure() {
		return found
	}

	if found.Value() == nil {
		return u.createUser(ctx, info)
	}
	return u.refreshUser(ctx, found.Value(), info)
}

// createUser handles the first login. When two first logins race, the
// storage uniqueness constraint makes exactly one Save win; the loser
// re-reads the winner's record and continues as a returning login.
func (u *GoogleLoginUsecase) createUser(ctx context.Context, info domain.ProviderUserInfo) result.Result[*domain.User] {
	created := domain.NewFromProvider(info)
	if created.IsFailure() {
		return created
	}

	saved := u.users.Save(ctx, created.Value())
	if saved.IsSuccess() {
		u.logger.Info("new user created", "user_id", saved.Value().UserID())
		return saved
	}

	if saved.Err().Code != apperrors.ErrCodeUserAlreadyExists {
		return saved
	}

	u.logger.Info("create conflict, re-reading winner", "provider_id", info.ID)
	winner := u.users.FindOne(ctx, port.UserQuery{ProviderID: info.ID})
	if winner.IsFailure() {
		return winner
	}
	if winner.Value() == nil {
		return result.Failure[*domain.User](apperrors.ErrServerError)
	}
	return u.refreshUser(ctx, winner.Value(), info)
}

// refreshUser updates the stored profile with the freshly verified one.
// The refresh is tolerant: if the new attributes fail validation or the
// write fails, the login still succeeds on the stored user. Only a
// provider type mismatch aborts the login.
func (u *GoogleLoginUsecase) refreshUser(ctx context.Context, user *domain.User, info domain.ProviderUserInfo) result.Result[*domain.User] {
	updated := user.UpdateProviderInfo(info)
	if updated.IsFailure() {
		if updated.Err().Code == apperrors.ErrCodeProviderTypeMismatch {
			return updated
		}
		u.logger.Warn("profile refresh rejected, continuing with stored data",
			"user_id", user.UserID(), "error_code", updated.Err().ErrorCode)
		return result.Success(user)
	}

	persisted := u.users.Update(ctx, updated.Value())
	if persisted.IsFailure() {
		u.logger.Warn("profile refresh write failed, continuing with stored data",
			"user_id", user.UserID(), "error_code", persisted.Err().ErrorCode)
		return result.Success(user)
	}

	return persisted
}
