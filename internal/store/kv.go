package store

import (
	"context"
	"sync"
)

// KV is an origin-scoped string key-value store.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set overwrites the value for key.
	Set(ctx context.Context, key, value string) error
}

// Memory is an in-process KV. Values live only as long as the process.
type Memory struct {
	mu     *sync.Mutex
	origin string
	data   map[string]map[string]string
}

// NewMemory returns an empty in-memory store scoped to origin.
func NewMemory(origin string) *Memory {
	return &Memory{mu: &sync.Mutex{}, origin: origin, data: make(map[string]map[string]string)}
}

// WithOrigin returns a view of the same backing map scoped to another origin.
func (m *Memory) WithOrigin(origin string) *Memory {
	return &Memory{mu: m.mu, origin: origin, data: m.data}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[m.origin][key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bucket, ok := m.data[m.origin]
	if !ok {
		bucket = make(map[string]string)
		m.data[m.origin] = bucket
	}
	bucket[key] = value
	return nil
}
