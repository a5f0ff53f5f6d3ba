// Package session persists per-browser-session UI state between requests.
// Each calendar surface (and the admin shell's tab choice) is stored as a
// JSON document under a minted session id.  When redis is configured the
// documents live there with a TTL so sessions survive restarts and are
// shared between instances; without redis the store degrades to process
// memory, mirroring how the rest of the service treats an absent redis.
//
// There is deliberately no per-session locking: two concurrent requests
// on the same session follow load-modify-store semantics and the last
// write wins, the same accepted race the browser app had.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no state exists under the given key.
var ErrNotFound = errors.New("session not found")

// Store reads and writes JSON session documents.
type Store interface {
	// Get unmarshals the document stored under key into v.
	Get(ctx context.Context, key string, v any) error
	// Put marshals v and stores it under key.
	Put(ctx context.Context, key string, v any) error
	// Delete removes the document under key, if any.
	Delete(ctx context.Context, key string) error
}

// NewID mints a fresh session identifier.
func NewID() string { return uuid.NewString() }

// New returns a redis-backed store when a client is available, otherwise
// an in-memory one.  ttl bounds how long an idle session survives; the
// memory store ignores it (the process is the session's lifetime there).
func New(rdb *redis.Client, ttl time.Duration) Store {
	if rdb == nil {
		return newMemoryStore()
	}
	return &redisStore{rdb: rdb, ttl: ttl}
}

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func (s *redisStore) Get(ctx context.Context, key string, v any) error {
	raw, err := s.rdb.Get(ctx, "session:"+key).Bytes()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func (s *redisStore) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, "session:"+key, raw, s.ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, "session:"+key).Err()
}

// memoryStore keeps the same marshalled-bytes semantics as the redis
// store so callers cannot accidentally share pointers through it.
type memoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, key string, v any) error {
	s.mu.RLock()
	raw, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func (s *memoryStore) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.docs, key)
	s.mu.Unlock()
	return nil
}
