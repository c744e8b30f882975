package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"api-server/app/domain"
	"api-server/app/port"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

type userRecord struct {
	id        string
	userID    int64
	provider  domain.ProviderUserInfo
	createdAt time.Time
	updatedAt time.Time
}

// UserRepository is an in-memory port.UserRepository used for local
// development and tests. It enforces the same provider id uniqueness the
// database index does, so the create-conflict path is exercisable without
// a running MongoDB.
type UserRepository struct {
	mu    sync.RWMutex
	users map[int64]*userRecord
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]*userRecord)}
}

// FindOne returns Success(nil) when no record matches.
func (r *UserRepository) FindOne(_ context.Context, query port.UserQuery) result.Result[*domain.User] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.users {
		if matches(rec, query) {
			return domain.RestoreFromDB(rec.id, rec.userID, rec.provider, rec.createdAt, rec.updatedAt)
		}
	}
	return result.Success[*domain.User](nil)
}

// Save inserts a new user, rejecting duplicate provider identities the same
// way the database unique index would.
func (r *UserRepository) Save(_ context.Context, user *domain.User) result.Result[*domain.User] {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.users {
		if rec.provider.ID == user.ProviderID() {
			return result.Failure[*domain.User](apperrors.ErrUserAlreadyExists)
		}
	}

	now := time.Now()
	id := uuid.NewString()
	r.users[user.UserID()] = &userRecord{
		id:        id,
		userID:    user.UserID(),
		provider:  user.Provider(),
		createdAt: user.CreatedAt(),
		updatedAt: now,
	}

	user.SetID(id)
	user.Touch(now)
	return result.Success(user)
}

// Update upserts the provider info keyed on the application user id.
func (r *UserRepository) Update(_ context.Context, user *domain.User) result.Result[*domain.User] {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if rec, ok := r.users[user.UserID()]; ok {
		rec.provider = user.Provider()
		rec.updatedAt = now
	} else {
		r.users[user.UserID()] = &userRecord{
			id:        uuid.NewString(),
			userID:    user.UserID(),
			provider:  user.Provider(),
			createdAt: user.CreatedAt(),
			updatedAt: now,
		}
	}

	user.Touch(now)
	return result.Success(user)
}

func matches(rec *userRecord, query port.UserQuery) bool {
	if query.ProviderID != "" && rec.provider.ID != query.ProviderID {
		return false
	}
	if query.Email != "" && rec.provider.Email != query.Email {
		return false
	}
	if query.UserID != 0 && rec.userID != query.UserID {
		return false
	}
	return query.ProviderID != "" || query.Email != "" || query.UserID != 0
}
