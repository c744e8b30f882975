package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"api-server/app/domain"
	"api-server/app/port"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

// userDocument is the stored shape of a user.
type userDocument struct {
	ID        bson.ObjectID    `bson:"_id,omitempty"`
	UserID    int64            `bson:"userId"`
	Provider  providerDocument `bson:"provider"`
	CreatedAt time.Time        `bson:"createdAt"`
	UpdatedAt time.Time        `bson:"updatedAt"`
}

type providerDocument struct {
	Type    string `bson:"type"`
	ID      string `bson:"id"`
	Name    string `bson:"name"`
	Email   string `bson:"email"`
	Picture string `bson:"picture,omitempty"`
}

// UserRepository implements port.UserRepository for MongoDB.
type UserRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewUserRepository creates a Mongo-backed user repository.
func NewUserRepository(db *DB, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		collection: db.Database().Collection(userCollection),
		logger:     logger.With("component", "user_repository"),
	}
}

// FindOne looks up a user. Absence is not an error: it returns
// Success(nil). Stored records are re-validated through the entity on the
// way out, so corrupt or legacy data surfaces as a validation failure
// instead of silently passing through.
func (r *UserRepository) FindOne(ctx context.Context, query port.UserQuery) result.Result[*domain.User] {
	filter := buildUserFilter(query)

	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Info("user not found", "provider_id", query.ProviderID)
			return result.Success[*domain.User](nil)
		}
		r.logger.Error("database error in FindOne", "error", err)
		return result.Failure[*domain.User](apperrors.ErrDatabaseError.WithCause(err))
	}

	restored := domain.RestoreFromDB(
		doc.ID.Hex(),
		doc.UserID,
		domain.ProviderUserInfo{
			Type:    domain.ProviderType(doc.Provider.Type),
			ID:      doc.Provider.ID,
			Name:    doc.Provider.Name,
			Email:   doc.Provider.Email,
			Picture: doc.Provider.Picture,
		},
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	if restored.IsFailure() {
		r.logger.Error("user restoration failed", "error_code", restored.Err().ErrorCode)
		return restored
	}

	return restored
}

// Save inserts a new user, assigns the storage id and stamps the
// timestamps. A duplicate provider identity maps to USER_ALREADY_EXISTS so
// the usecase can resolve the first-login race.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) result.Result[*domain.User] {
	now := time.Now()
	objectID := bson.NewObjectID()

	_, err := r.collection.InsertOne(ctx, userDocument{
		ID:        objectID,
		UserID:    user.UserID(),
		Provider:  toProviderDocument(user.Provider()),
		CreatedAt: user.CreatedAt(),
		UpdatedAt: now,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("duplicate user on save", "provider_id", user.ProviderID())
			return result.Failure[*domain.User](apperrors.ErrUserAlreadyExists)
		}
		r.logger.Error("database error in Save", "error", err)
		return result.Failure[*domain.User](apperrors.ErrDatabaseError.WithCause(err))
	}

	user.SetID(objectID.Hex())
	user.Touch(now)
	return result.Success(user)
}

// Update upserts the provider info keyed on the stable application user id
// and bumps updatedAt. Matching on the application id rather than the
// storage id is what makes repeated logins idempotent.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) result.Result[*domain.User] {
	now := time.Now()

	_, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "userId", Value: user.UserID()}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "provider", Value: toProviderDocument(user.Provider())},
			{Key: "updatedAt", Value: now},
		}}},
	)
	if err != nil {
		r.logger.Error("database error in Update", "error", err)
		return result.Failure[*domain.User](apperrors.ErrDatabaseError.WithCause(err))
	}

	user.Touch(now)
	return result.Success(user)
}

func buildUserFilter(query port.UserQuery) bson.D {
	filter := bson.D{}
	if query.ProviderID != "" {
		filter = append(filter, bson.E{Key: "provider.id", Value: query.ProviderID})
	}
	if query.Email != "" {
		filter = append(filter, bson.E{Key: "provider.email", Value: query.Email})
	}
	if query.UserID != 0 {
		filter = append(filter, bson.E{Key: "userId", Value: query.UserID})
	}
	return filter
}

func toProviderDocument(info domain.ProviderUserInfo) providerDocument {
	return providerDocument{
		Type:    string(info.Type),
		ID:      info.ID,
		Name:    info.Name,
		Email:   info.Email,
		Picture: info.Picture,
	}
}
