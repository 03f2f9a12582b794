package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrNoSnapshot signals no identity snapshot has been persisted.
var ErrNoSnapshot = errors.New("no session snapshot")

// SnapshotStore is the durable key-value record holding the serialized
// identity of the current session. The session manager is its sole reader
// and writer; a single fixed key is used for the whole process.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, raw []byte) error
	Clear(ctx context.Context) error
}

// MemorySnapshotStore keeps the snapshot in process memory. It is the
// default when no Redis is configured, and the store used by tests.
type MemorySnapshotStore struct {
	mu      sync.Mutex
	raw     []byte
	present bool
}

// NewMemorySnapshotStore returns an empty store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (s *MemorySnapshotStore) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return nil, ErrNoSnapshot
	}
	return append([]byte(nil), s.raw...), nil
}

func (s *MemorySnapshotStore) Save(_ context.Context, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = append([]byte(nil), raw...)
	s.present = true
	return nil
}

func (s *MemorySnapshotStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = nil
	s.present = false
	return nil
}

// RedisSnapshotStore persists the snapshot under a fixed Redis key so the
// session survives process restarts.
type RedisSnapshotStore struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshotStore builds a store bound to the given key.
func NewRedisSnapshotStore(client *redis.Client, key string) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, key: key}
}

func (s *RedisSnapshotStore) Load(ctx context.Context) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return raw, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, raw []byte) error {
	return s.client.Set(ctx, s.key, raw, 0).Err()
}

func (s *RedisSnapshotStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
