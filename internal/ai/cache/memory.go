package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultCleanupInterval = 5 * time.Minute

type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	cleanup time.Duration
}

// WithCleanupInterval sets how often expired entries are swept.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(c *memoryConfig) { c.cleanup = d }
}

// Memory is a process-local Cache. A zero ttl keeps the value forever;
// expired values are dropped by a background sweep.
type Memory struct {
	items *gocache.Cache
}

func NewMemory(opts ...MemoryOption) *Memory {
	cfg := memoryConfig{cleanup: DefaultCleanupInterval}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Memory{items: gocache.New(gocache.NoExpiration, cfg.cleanup)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx

	v, ok := m.items.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	b, _ := v.([]byte)
	return append([]byte(nil), b...), nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_ = ctx

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.items.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

// Len reports the number of stored entries, expired ones not yet swept included.
func (m *Memory) Len() int {
	return m.items.ItemCount()
}
