package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"api-server/app/domain"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

type studyHistoryDocument struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	UserID         string        `bson:"userId"`
	QuestionID     string        `bson:"questionId"`
	Word           string        `bson:"word"`
	IsCorrect      bool          `bson:"isCorrect"`
	SelectedAnswer string        `bson:"selectedAnswer"`
	CorrectAnswer  string        `bson:"correctAnswer"`
	StudiedAt      time.Time     `bson:"studiedAt"`
}

// StudyHistoryRepository implements port.StudyHistoryRepository for MongoDB.
type StudyHistoryRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewStudyHistoryRepository creates a Mongo-backed history repository.
func NewStudyHistoryRepository(db *DB, logger *slog.Logger) *StudyHistoryRepository {
	return &StudyHistoryRepository{
		collection: db.Database().Collection(studyHistoryCollection),
		logger:     logger.With("component", "study_history_repository"),
	}
}

// BulkSave inserts a round's worth of history entries in one write and
// assigns the storage ids back onto the entities.
func (r *StudyHistoryRepository) BulkSave(ctx context.Context, histories []*domain.StudyHistory) result.Result[[]*domain.StudyHistory] {
	if len(histories) == 0 {
		return result.Success(histories)
	}

	docs := make([]interface{}, 0, len(histories))
	ids := make([]bson.ObjectID, 0, len(histories))
	for _, h := range histories {
		id := bson.NewObjectID()
		ids = append(ids, id)
		docs = append(docs, studyHistoryDocument{
			ID:             id,
			UserID:         h.UserID(),
			QuestionID:     h.QuestionID(),
			Word:           h.Word(),
			IsCorrect:      h.IsCorrect(),
			SelectedAnswer: h.SelectedAnswer(),
			CorrectAnswer:  h.CorrectAnswer(),
			StudiedAt:      h.StudiedAt(),
		})
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		r.logger.Error("database error in BulkSave", "error", err)
		return result.Failure[[]*domain.StudyHistory](apperrors.ErrDatabaseError.WithCause(err))
	}

	for i, h := range histories {
		h.SetID(ids[i].Hex())
	}

	r.logger.Info("study histories saved", "count", len(histories))
	return result.Success(histories)
}

// FindByUserID returns a user's history, most recent first.
func (r *StudyHistoryRepository) FindByUserID(ctx context.Context, userID string) result.Result[[]*domain.StudyHistory] {
	findOpts := options.Find().SetSort(bson.D{{Key: "studiedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.D{{Key: "userId", Value: userID}}, findOpts)
	if err != nil {
		r.logger.Error("database error in FindByUserID", "error", err)
		return result.Failure[[]*domain.StudyHistory](apperrors.ErrDatabaseError.WithCause(err))
	}
	defer cursor.Close(ctx)

	var docs []studyHistoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("cursor error in FindByUserID", "error", err)
		return result.Failure[[]*domain.StudyHistory](apperrors.ErrDatabaseError.WithCause(err))
	}

	histories := make([]*domain.StudyHistory, 0, len(docs))
	for _, doc := range docs {
		restored := domain.RestoreStudyHistoryFromDB(
			doc.ID.Hex(),
			doc.UserID,
			doc.QuestionID,
			doc.Word,
			doc.IsCorrect,
			doc.SelectedAnswer,
			doc.CorrectAnswer,
			doc.StudiedAt,
		)
		if restored.IsFailure() {
			r.logger.Error("history restoration failed", "id", doc.ID.Hex())
			return result.Failure[[]*domain.StudyHistory](restored.Err())
		}
		histories = append(histories, restored.Value())
	}

	return result.Success(histories)
}
