package port

import (
	"context"

	"api-server/app/domain"
	"api-server/app/utils/result"
)

// UserQuery selects a user by application-level attributes. A zero field is
// ignored; the provider id is the primary lookup key for login.
type UserQuery struct {
	ProviderID string
	Email      string
	UserID     int64
}

// UserRepository is the persistence contract for users. Absence is not an
// error: FindOne returns Success(nil) when no record matches. Storage
// faults surface as DATABASE_ERROR failures, never as panics.
type UserRepository interface {
	FindOne(ctx context.Context, query UserQuery) result.Result[*domain.User]

	// Save inserts a new record, assigns the storage id and stamps the
	// timestamps. A duplicate provider identity fails with
	// USER_ALREADY_EXISTS so concurrent first logins can be resolved.
	Save(ctx context.Context, user *domain.User) result.Result[*domain.User]

	// Update upserts the provider info keyed on the stable application
	// user id and bumps the update timestamp.
	Update(ctx context.Context, user *domain.User) result.Result[*domain.User]
}
