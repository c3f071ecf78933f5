package storage

import (
	"context"
	"encoding/json"
	"errors"

	redis "github.com/redis/go-redis/v9"

	"todoapp/internal/domain"
)

// DefaultRedisKey is the key the collection document lives under.
const DefaultRedisKey = "todos:collection"

// RedisStore keeps the collection as a single JSON document under one key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, addr, password string, db int, key string) (*RedisStore, error) {
	if key == "" {
		key = DefaultRedisKey
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, &StorageError{Op: "connect", Err: err}
	}
	return &RedisStore{client: client, key: key}, nil
}

// Load reads the collection document. A missing key is an empty collection.
func (s *RedisStore) Load(ctx context.Context) ([]domain.Todo, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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

// Save replaces the collection document.
func (s *RedisStore) Save(ctx context.Context, todos []domain.Todo) error {
	data, err := json.Marshal(todos)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
