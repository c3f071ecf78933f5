package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"todoapp/internal/domain"
)

// FileStore keeps the collection in a JSON file. Writes go through a temp
// file and an atomic rename; the previous contents are kept in a .bak next to
// the main file.
type FileStore struct {
	path string
}

// NewFileStore stores the collection at path. Parent directories are created
// on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the collection. A missing file is an empty collection.
func (s *FileStore) Load(ctx context.Context) ([]domain.Todo, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Todo{}, nil
		}
		return nil, &StorageError{Op: "load", Err: err}
	}

	var todos []domain.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

// Save writes the collection atomically and refreshes the backup.
func (s *FileStore) Save(ctx context.Context, todos []domain.Todo) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if err := s.backup(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-")
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(todos); err != nil {
		_ = tmp.Close()
		return &StorageError{Op: "save", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &StorageError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Op: "save", Err: err}
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

func (s *FileStore) backup() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &StorageError{Op: "backup", Err: err}
	}
	if err := os.WriteFile(s.path+".bak", data, 0o644); err != nil {
		return &StorageError{Op: "backup", Err: err}
	}
	return nil
}
