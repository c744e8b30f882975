package domain

import (
	"math/rand/v2"
	"regexp"
	"time"
	"unicode/utf8"

	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

const (
	minUserNameLength = 1
	maxUserNameLength = 50

	// Application user ids are drawn from a wide range so that two users
	// created concurrently are unlikely to collide even before the storage
	// uniqueness constraint kicks in.
	maxUserID = int64(1) << 53
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is the domain entity for an authenticated user. The storage id is
// assigned on first persistence; the application user id is generated once
// at creation and never reassigned.
type User struct {
	id        string
	userID    int64
	provider  ProviderUserInfo
	createdAt time.Time
	updatedAt time.Time
}

// ID returns the storage id (empty before the first save).
func (u *User) ID() string { return u.id }

// UserID returns the stable application user id.
func (u *User) UserID() int64 { return u.userID }

// Provider returns the current provider-reported identity.
func (u *User) Provider() ProviderUserInfo { return u.provider }

// Name returns the provider-reported display name.
func (u *User) Name() string { return u.provider.Name }

// Email returns the provider-reported email address.
func (u *User) Email() string { return u.provider.Email }

// Picture returns the provider-reported avatar URL, if any.
func (u *User) Picture() string { return u.provider.Picture }

// ProviderID returns the provider-side user id.
func (u *User) ProviderID() string { return u.provider.ID }

func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID assigns the storage id. Called by repositories after an insert.
func (u *User) SetID(id string) { u.id = id }

// Touch bumps the update timestamp. Called by repositories on persistence.
func (u *User) Touch(now time.Time) { u.updatedAt = now }

// UpdateProviderInfo refreshes the provider-reported identity. The provider
// type is fixed for the lifetime of the user; the refreshed attributes go
// through the same validation as every other construction path.
func (u *User) UpdateProviderInfo(info ProviderUserInfo) result.Result[*User] {
	if info.Type != u.provider.Type {
		return result.Failure[*User](apperrors.ErrProviderTypeMismatch)
	}
	if validated := validateProviderInfo(info); validated.IsFailure() {
		return result.Failure[*User](validated.Err())
	}
	u.provider = info
	u.updatedAt = time.Now()
	return result.Success(u)
}

// NewFromProvider creates a brand-new user from verified provider info,
// generating a fresh application user id.
func NewFromProvider(info ProviderUserInfo) result.Result[*User] {
	return NewFromProviderWithID(newUserID(), info)
}

// NewFromProviderWithID creates a user with a caller-supplied application
// user id. Used when the id already exists and must be preserved.
func NewFromProviderWithID(userID int64, info ProviderUserInfo) result.Result[*User] {
	if validated := validateProviderInfo(info); validated.IsFailure() {
		return result.Failure[*User](validated.Err())
	}
	now := time.Now()
	return result.Success(&User{
		userID:    userID,
		provider:  info,
		createdAt: now,
		updatedAt: now,
	})
}

// RestoreFromDB rebuilds a user from its stored representation. Stored
// records are re-validated on every load so that data drifting out of the
// current invariants never passes through silently.
func RestoreFromDB(id string, userID int64, info ProviderUserInfo, createdAt, updatedAt time.Time) result.Result[*User] {
	if validated := validateProviderInfo(info); validated.IsFailure() {
		return result.Failure[*User](validated.Err())
	}
	return result.Success(&User{
		id:        id,
		userID:    userID,
		provider:  info,
		createdAt: createdAt,
		updatedAt: updatedAt,
	})
}

// validateProviderInfo is the single validation funnel for every user
// construction path. Rule order is fixed: name length first, then email
// format; the first failing rule wins.
func validateProviderInfo(info ProviderUserInfo) result.Result[ProviderUserInfo] {
	if checked := checkNameLength(info.Name); checked.IsFailure() {
		return result.Failure[ProviderUserInfo](checked.Err())
	}
	if checked := checkEmailFormat(info.Email); checked.IsFailure() {
		return result.Failure[ProviderUserInfo](checked.Err())
	}
	return result.Success(info)
}

func checkNameLength(name string) result.Result[string] {
	length := utf8.RuneCountInString(name)
	if length < minUserNameLength || length > maxUserNameLength {
		return result.Failure[string](apperrors.ErrInvalidNameLength)
	}
	return result.Success(name)
}

func checkEmailFormat(email string) result.Result[string] {
	if !emailPattern.MatchString(email) {
		return result.Failure[string](apperrors.ErrInvalidEmailFormat)
	}
	return result.Success(email)
}

func newUserID() int64 {
	return rand.Int64N(maxUserID)
}
