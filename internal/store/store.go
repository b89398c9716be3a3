package store

import "sync"

// Keys of the three persisted blobs.
const (
	KeyProducts = "products"
	KeySales    = "sales"
	KeyExpenses = "expenses"
)

// Store is the key-value blob persistence boundary. Get reports whether the
// key was present; an absent key is not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Memory is an in-process Store used by tests and ephemeral runs.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.blobs[key]
	return value, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = value
	return nil
}
