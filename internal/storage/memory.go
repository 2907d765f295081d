// ABOUTME: In-memory KV backend for tests and dry runs.
// ABOUTME: Values are copied on the way in and out.
package storage

import (
	"slices"
	"sync"
)

// MemoryKV keeps every slot in a map.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get returns a copy of the value under key.
func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

// Set stores a copy of value under key.
func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = slices.Clone(value)
	return nil
}

// SetAll stores copies of every value under one lock.
func (m *MemoryKV) SetAll(values map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.data[k] = slices.Clone(v)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Close is a no-op.
func (m *MemoryKV) Close() error {
	return nil
}
