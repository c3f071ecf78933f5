package storage

import (
	"context"
	"sync"

	"todoapp/internal/domain"
)

// MemoryStore holds the collection in process memory. Default backend for
// development and tests; nothing survives a restart.
type MemoryStore struct {
	mu    sync.Mutex
	todos []domain.Todo
	saves int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{todos: []domain.Todo{}}
}

func (s *MemoryStore) Load(ctx context.Context) ([]domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneAll(s.todos), nil
}

func (s *MemoryStore) Save(ctx context.Context, todos []domain.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = domain.CloneAll(todos)
	s.saves++
	return nil
}

// SaveCount reports how many saves ran. Test hook.
func (s *MemoryStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
