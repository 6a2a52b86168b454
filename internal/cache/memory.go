package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Expired items are dropped lazily on
// read and by the cleanup loop started with StartCleanup.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time

	cleanupFreq time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

func NewMemoryStore(cleanupFreq time.Duration) *MemoryStore {
	if cleanupFreq <= 0 {
		cleanupFreq = time.Minute
	}
	return &MemoryStore{
		items:       make(map[string]memoryItem),
		now:         time.Now,
		cleanupFreq: cleanupFreq,
		stop:        make(chan struct{}),
	}
}

func (m *MemoryStore) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	if !ok || m.expired(item) {
		return ErrMiss
	}
	if err := json.Unmarshal(item.data, dest); err != nil {
		return fmt.Errorf("unmarshaling cached value: %w", err)
	}
	return nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}

	item := memoryItem{data: data}
	if ttl > 0 {
		item.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.items[key] = item
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.items, k)
	}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()
	return ok && !m.expired(item), nil
}

// StartCleanup evicts expired items every cleanupFreq until ctx is done or
// StopCleanup is called.
func (m *MemoryStore) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.cleanupFreq)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.evictExpired()
			case <-m.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *MemoryStore) StopCleanup() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *MemoryStore) evictExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, item := range m.items {
		if m.expired(item) {
			delete(m.items, k)
		}
	}
}

func (m *MemoryStore) expired(item memoryItem) bool {
	return !item.expiresAt.IsZero() && m.now().After(item.expiresAt)
}
