package testutil

import (
	"sync"

	"github.com/footprint-tools/chunky/internal/domain"
)

// MemConfig is an in-memory domain.ConfigProvider.
type MemConfig struct {
	mu     sync.Mutex
	values map[string]string

	// Err, when set, is returned by Set and Unset.
	Err error
}

// NewMemConfig returns a provider seeded with values.
func NewMemConfig(values map[string]string) *MemConfig {
	m := &MemConfig{values: make(map[string]string)}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

func (m *MemConfig) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemConfig) GetAll() (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *MemConfig) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.values[key] = value
	return nil
}

func (m *MemConfig) Unset(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.values, key)
	return nil
}

var _ domain.ConfigProvider = (*MemConfig)(nil)
