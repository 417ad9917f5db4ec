package answercache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/filacolia/internal/db"
)

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

// memStore is a map-backed store shared between caches.
type memStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func newTestCache(t *testing.T) (*Cache, *mockKVStore, *prometheus.CounterVec) {
	t.Helper()
	ms := &mockKVStore{}
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_answer_cache_total", Help: "test"},
		[]string{"result"},
	)
	return New(ms, "test-corpus", time.Hour, counter, zap.NewNop()), ms, counter
}
