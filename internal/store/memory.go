package store

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store used by tests and the demo seeder.
// It applies the same failure policy as GormStore: a simulated transport
// failure makes point operations error and scans return empty.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[string][]byte
	fail error
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string][]byte)}
}

// FailWith makes every subsequent call behave as if the backend were
// unreachable with err. Pass nil to restore normal operation.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func (s *MemoryStore) Get(key string, target interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fail != nil {
		return s.fail
	}
	raw, ok := s.rows[key]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, target)
}

func (s *MemoryStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.rows[key] = raw
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	delete(s.rows, key)
	return nil
}

func (s *MemoryStore) ScanByPrefix(prefix string) []json.RawMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fail != nil {
		return nil
	}
	keys := make([]string, 0)
	for k := range s.rows {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	// deterministic order helps tests; callers must not rely on it
	sort.Strings(keys)
	values := make([]json.RawMessage, 0, len(keys))
	for _, k := range keys {
		values = append(values, json.RawMessage(s.rows[k]))
	}
	return values
}

// Len reports the number of stored records
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}
