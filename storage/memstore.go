package storage

import (
	"sync"

	"github.com/vatsala281203/food-logger/models"
)

// MemoryStore keeps the meal log in memory. It backs tests and can run
// the service without any persistence.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []models.MealLogEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: []models.MealLogEntry{}}
}

func (s *MemoryStore) Append(entry models.MealLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	return nil
}

func (s *MemoryStore) ReadAll() ([]models.MealLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Deep copy: nutrition is held by pointer, and callers must never be
	// able to reach stored state through a returned entry.
	out := make([]models.MealLogEntry, len(s.entries))
	for i, e := range s.entries {
		if e.Nutrition != nil {
			n := *e.Nutrition
			e.Nutrition = &n
		}
		out[i] = e
	}
	return out, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []models.MealLogEntry{}
	return nil
}
