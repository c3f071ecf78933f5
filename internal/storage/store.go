package storage

import (
	"context"

	"todoapp/internal/domain"
)

// Store persists the whole collection as one document. Implementations return
// an empty collection (not an error) when nothing has been saved yet.
type Store interface {
	Load(ctx context.Context) ([]domain.Todo, error)
	Save(ctx context.Context, todos []domain.Todo) error
}

// StorageError wraps a persistence failure. Callers surface it but never treat
// it as fatal: the in-memory collection stays the source of truth.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "storage " + e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
