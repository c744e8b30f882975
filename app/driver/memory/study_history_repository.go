package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"api-server/app/domain"
	"api-server/app/utils/result"
)

// StudyHistoryRepository is an in-memory port.StudyHistoryRepository.
type StudyHistoryRepository struct {
	mu        sync.RWMutex
	histories []*domain.StudyHistory
}

// NewStudyHistoryRepository creates an empty in-memory history repository.
func NewStudyHistoryRepository() *StudyHistoryRepository {
	return &StudyHistoryRepository{}
}

// BulkSave appends the entries and assigns storage ids.
func (r *StudyHistoryRepository) BulkSave(_ context.Context, histories []*domain.StudyHistory) result.Result[[]*domain.StudyHistory] {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range histories {
		h.SetID(uuid.NewString())
		r.histories = append(r.histories, h)
	}
	return result.Success(histories)
}

// FindByUserID returns a user's history, most recent first.
func (r *StudyHistoryRepository) FindByUserID(_ context.Context, userID string) result.Result[[]*domain.StudyHistory] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found []*domain.StudyHistory
	for _, h := range r.histories {
		if h.UserID() == userID {
			found = append(found, h)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].StudiedAt().After(found[j].StudiedAt())
	})
	return result.Success(found)
}
