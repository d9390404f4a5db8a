// Package persist keeps companion state across runs in a durable key-value
// store.
package persist

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// Store is a durable string-keyed blob store.
type Store interface {
	// Get returns the value for key. A missing key is (nil, false, nil).
	Get(key string) ([]byte, bool, error)
	Set(key string, data []byte) error
}

// statePropKey is the gdata property holding a slot's payload.
const statePropKey = "state"

// GdataStore keeps each key as a gdata object in the per-user application
// data directory.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdataStore opens (or creates) the data directory for appName.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata for %s: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

func (s *GdataStore) Get(key string) ([]byte, bool, error) {
	if !s.m.ObjectPropExists(key, statePropKey) {
		return nil, false, nil
	}
	data, err := s.m.LoadObjectProp(key, statePropKey)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return data, true, nil
}

func (s *GdataStore) Set(key string, data []byte) error {
	if err := s.m.SaveObjectProp(key, statePropKey, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// MemoryStore is a process-local Store. The host falls back to it when no
// durable store can be opened.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (s *MemoryStore) Set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}
