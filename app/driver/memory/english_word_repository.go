package memory

import (
	"context"
	"math/rand/v2"
	"sync"

	"api-server/app/domain"
	apperrors "api-server/app/utils/errors"
	"api-server/app/utils/result"
)

// EnglishWordRepository is an in-memory port.EnglishWordRepository. It can
// be pre-seeded with questions for local development.
type EnglishWordRepository struct {
	mu    sync.RWMutex
	words map[string]*domain.EnglishWord
}

// NewEnglishWordRepository creates an empty in-memory question repository.
func NewEnglishWordRepository() *EnglishWordRepository {
	return &EnglishWordRepository{words: make(map[string]*domain.EnglishWord)}
}

// Seed adds questions. Intended for startup seeding and tests.
func (r *EnglishWordRepository) Seed(words []*domain.EnglishWord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range words {
		r.words[w.ID()] = w
	}
}

// FindRandom shuffles the stored questions and returns the first n.
func (r *EnglishWordRepository) FindRandom(_ context.Context, n int) result.Result[[]*domain.EnglishWord] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.words) < n {
		return result.Failure[[]*domain.EnglishWord](apperrors.ErrInsufficientQuestions)
	}

	all := make([]*domain.EnglishWord, 0, len(r.words))
	for _, w := range r.words {
		all = append(all, w)
	}
	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	return result.Success(all[:n])
}

// FindByID returns Success(nil) when the question does not exist.
func (r *EnglishWordRepository) FindByID(_ context.Context, id string) result.Result[*domain.EnglishWord] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if w, ok := r.words[id]; ok {
		return result.Success(w)
	}
	return result.Success[*domain.EnglishWord](nil)
}
