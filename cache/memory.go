package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value    []byte
	storedAt time.Time
}

// Memory is a process-local cache.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	ttl   time.Duration
	clock Clock
}

func NewMemory(ttl time.Duration, clock Clock) *Memory {
	if clock == nil {
		clock = SystemClock
	}
	return &Memory{items: map[string]memoryItem{}, ttl: ttl, clock: clock}
}

func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.RLock()
	it, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return Entry{}, false, nil
	}
	return Entry{
		Value:    it.value,
		StoredAt: it.storedAt,
		Fresh:    m.clock.Now().Sub(it.storedAt) < m.ttl,
	}, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.items[key] = memoryItem{value: value, storedAt: m.clock.Now()}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Invalidate(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.items, k)
	}
	m.mu.Unlock()
	return nil
}
