package storage

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"todoapp/internal/domain"
)

// PostgresStore keeps the collection in a todos table, one row per todo with
// an explicit position column preserving collection order.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore wraps an existing pool and ensures the todos table exists.
func NewPostgresStore(ctx context.Context, db *pgxpool.Pool) (*PostgresStore, error) {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id           TEXT PRIMARY KEY,
			position     INT NOT NULL,
			title        TEXT NOT NULL,
			completed    BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ,
			priority     TEXT NOT NULL DEFAULT '',
			category     TEXT NOT NULL DEFAULT '',
			notes        TEXT NOT NULL DEFAULT '',
			due_date     TIMESTAMPTZ,
			notified     BOOLEAN NOT NULL DEFAULT FALSE
		)`)
	if err != nil {
		return nil, &StorageError{Op: "migrate", Err: err}
	}
	return &PostgresStore{db: db}, nil
}

// Load reads all rows in collection order.
func (s *PostgresStore) Load(ctx context.Context) ([]domain.Todo, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, completed, created_at, completed_at,
		       priority, category, notes, due_date, notified
		FROM todos ORDER BY position`)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.CompletedAt,
			&t.Priority, &t.Category, &t.Notes, &t.DueDate, &t.Notified); err != nil {
			return nil, &StorageError{Op: "load", Err: err}
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return todos, nil
}

// Save replaces the whole table in one transaction. The collection is small
// and single-writer, so a full rewrite is simpler than diffing rows.
func (s *PostgresStore) Save(ctx context.Context, todos []domain.Todo) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM todos`); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	for i, t := range todos {
		_, err := tx.Exec(ctx, `
			INSERT INTO todos (id, position, title, completed, created_at, completed_at,
			                   priority, category, notes, due_date, notified)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			t.ID, i, t.Title, t.Completed, t.CreatedAt, t.CompletedAt,
			string(t.Priority), t.Category, t.Notes, t.DueDate, t.Notified)
		if err != nil {
			return &StorageError{Op: "save", Err: err}
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
