package cache

import (
	"context"
	"sync"

	"lojinha_pricing/internal/usecase/interfaces"
)

// MemoryCache is the in-process stand-in used when REDIS_ADDR is unset.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ interfaces.ICacheRepository = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]string)}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
