package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"api-server/app/domain"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

type englishWordDocument struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Word          string        `bson:"word"`
	CorrectAnswer string        `bson:"correctAnswer"`
	Choices       []string      `bson:"choices"`
	Difficulty    int           `bson:"difficulty"`
	Category      string        `bson:"category,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt"`
}

// EnglishWordRepository implements port.EnglishWordRepository for MongoDB.
type EnglishWordRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewEnglishWordRepository creates a Mongo-backed question repository.
func NewEnglishWordRepository(db *DB, logger *slog.Logger) *EnglishWordRepository {
	return &EnglishWordRepository{
		collection: db.Database().Collection(englishWordCollection),
		logger:     logger.With("component", "english_word_repository"),
	}
}

// FindRandom samples n questions server-side. Sampling in the database
// keeps the working set out of application memory and gives each round an
// independent draw.
func (r *EnglishWordRepository) FindRandom(ctx context.Context, n int) result.Result[[]*domain.EnglishWord] {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error("database error in FindRandom", "error", err)
		return result.Failure[[]*domain.EnglishWord](apperrors.ErrDatabaseError.WithCause(err))
	}
	defer cursor.Close(ctx)

	var docs []englishWordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("cursor error in FindRandom", "error", err)
		return result.Failure[[]*domain.EnglishWord](apperrors.ErrDatabaseError.WithCause(err))
	}

	if len(docs) < n {
		r.logger.Warn("not enough questions available", "requested", n, "available", len(docs))
		return result.Failure[[]*domain.EnglishWord](apperrors.ErrInsufficientQuestions)
	}

	words := make([]*domain.EnglishWord, 0, len(docs))
	for _, doc := range docs {
		restored := restoreEnglishWord(doc)
		if restored.IsFailure() {
			r.logger.Error("question restoration failed", "id", doc.ID.Hex())
			return result.Failure[[]*domain.EnglishWord](restored.Err())
		}
		words = append(words, restored.Value())
	}

	return result.Success(words)
}

// FindByID returns Success(nil) when the question does not exist. A
// malformed id is the caller's fault, not a missing document.
func (r *EnglishWordRepository) FindByID(ctx context.Context, id string) result.Result[*domain.EnglishWord] {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Warn("malformed question id", "id", id)
		return result.Failure[*domain.EnglishWord](apperrors.ErrInvalidQuestionID)
	}

	var doc englishWordDocument
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result.Success[*domain.EnglishWord](nil)
		}
		r.logger.Error("database error in FindByID", "error", err)
		return result.Failure[*domain.EnglishWord](apperrors.ErrDatabaseError.WithCause(err))
	}

	return restoreEnglishWord(doc)
}

func restoreEnglishWord(doc englishWordDocument) result.Result[*domain.EnglishWord] {
	return domain.RestoreEnglishWordFromDB(
		doc.ID.Hex(),
		doc.Word,
		doc.CorrectAnswer,
		doc.Choices,
		doc.Difficulty,
		doc.Category,
		doc.CreatedAt,
	)
}
