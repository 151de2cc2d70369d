package notifications

import (
	"context"
	"slices"
	"sync"
)

// Storage keeps recent toasts per profile.
type Storage interface {
	Create(ctx context.Context, t Toast) error
	// Recent returns up to limit toasts, newest first. limit <= 0 means all.
	Recent(ctx context.Context, profileID string, limit int) ([]Toast, error)
}

// MemoryStorage keeps the last historySize toasts of every profile.
type MemoryStorage struct {
	mu          sync.RWMutex
	historySize int
	toasts      map[string][]Toast
}

func NewMemoryStorage(historySize int) *MemoryStorage {
	return &MemoryStorage{
		historySize: max(historySize, 1),
		toasts:      make(map[string][]Toast),
	}
}

func (s *MemoryStorage) Create(_ context.Context, t Toast) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append(s.toasts[t.ProfileID], t)
	if over := len(list) - s.historySize; over > 0 {
		list = slices.Clone(list[over:])
	}
	s.toasts[t.ProfileID] = list
	return nil
}

func (s *MemoryStorage) Recent(_ context.Context, profileID string, limit int) ([]Toast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.toasts[profileID]
	out := make([]Toast, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, list[i])
	}
	return out, nil
}
