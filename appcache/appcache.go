package appcache

import "sync"

// Record is a stored contract payload with the timestamp of the transaction
// that carried it.
type Record struct {
	Value     string
	Timestamp int64
}

// MemStore is an in-memory section/key/value store. It satisfies
// dispatch.Store and suits tests and light setups that rebuild state from the
// chain on startup.
type MemStore struct {
	mu       sync.RWMutex
	sections map[string]map[string]Record
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{sections: make(map[string]map[string]Record)}
}

// Write stores value under (section, key).
func (s *MemStore) Write(section, key, value string, txTime int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, ok := s.sections[section]
	if !ok {
		sec = make(map[string]Record)
		s.sections[section] = sec
	}

	sec[key] = Record{Value: value, Timestamp: txTime}

	return nil
}

// Delete removes the record under (section, key). Deleting a missing record
// is not an error.
func (s *MemStore) Delete(section, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sec, ok := s.sections[section]; ok {
		delete(sec, key)
	}

	return nil
}

// Read returns the record under (section, key).
func (s *MemStore) Read(section, key string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sections[section][key]

	return rec, ok
}

// Len returns the number of records in a section.
func (s *MemStore) Len(section string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sections[section])
}
