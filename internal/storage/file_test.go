package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/domain"
)

func sampleTodos() []domain.Todo {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	done := now.Add(time.Hour)
	due := now.AddDate(0, 0, 2)
	return []domain.Todo{
		{
			ID:          "id-2",
			Title:       "second",
			Completed:   true,
			CreatedAt:   now,
			CompletedAt: &done,
			Priority:    domain.PriorityHigh,
			Category:    "Work",
			Notes:       "notes",
			DueDate:     &due,
		},
		{ID: "id-1", Title: "first", CreatedAt: now},
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "todos.json"))

	todos, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestFileStoreSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "todos.json")
	store := NewFileStore(path)
	want := sampleTodos()

	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleTodos()))
	require.NoError(t, store.Save(ctx, sampleTodos()[:1]))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Contains(t, string(backup), "id-1", "backup holds the previous generation")
}

func TestFileStoreCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	var sErr *StorageError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, "load", sErr.Op)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	want := sampleTodos()

	require.NoError(t, store.Save(ctx, want))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Load returns a copy; mutating it must not leak back.
	got[0].Title = "mutated"
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", again[0].Title)
}
