package requestlog

import "sync"

// DefaultCapacity bounds the in-memory store when the caller does not
// choose a size.
const DefaultCapacity = 500

// Filter narrows the entries returned by List.
type Filter struct {
	// Operation keeps only entries for the named operation.
	Operation string
	// HasError, when set, keeps only failed (true) or succeeded (false)
	// entries.
	HasError *bool
	// Limit caps the number of returned entries; 0 means no cap.
	Limit int
	// Offset skips that many matching entries first.
	Offset int
}

// MemoryStore is a bounded in-memory request log. When full, the
// oldest entry is evicted. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
}

// NewMemoryStore returns a store bounded to capacity entries. A
// non-positive capacity falls back to DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{capacity: capacity}
}

// Record appends an entry, evicting the oldest when at capacity.
func (s *MemoryStore) Record(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) >= s.capacity {
		s.entries = s.entries[1:]
	}
	s.entries = append(s.entries, e)
}

// List returns matching entries, newest first.
func (s *MemoryStore) List(f Filter) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	skipped := 0
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if f.Operation != "" && e.Operation != f.Operation {
			continue
		}
		if f.HasError != nil && (e.Error != "") != *f.HasError {
			continue
		}
		if skipped < f.Offset {
			skipped++
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out
}

// Get returns the entry with the given ID.
func (s *MemoryStore) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].ID == id {
			return s.entries[i], true
		}
	}
	return Entry{}, false
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear drops all entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
