// Package store provides the in-memory revenue entry store backing the
// HTTP API. Entries live only for the process lifetime; durable
// persistence is a host concern, not this service's.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/revcast/revcast/internal/ledger"
	"github.com/revcast/revcast/internal/periods"
)

// Filter narrows a List call. Zero-value fields are open.
type Filter struct {
	From     periods.Period // inclusive lower period bound
	To       periods.Period // inclusive upper period bound
	Category string
}

// MemoryStore is a mutex-guarded map of entries keyed by ID.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]ledger.Entry
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]ledger.Entry),
	}
}

// Add inserts an entry, assigning a fresh UUID and creation timestamp
// when missing, and returns the stored value.
func (s *MemoryStore) Add(e ledger.Entry) ledger.Entry {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.entries[e.ID] = e
	s.mu.Unlock()
	return e
}

// Get returns the entry with the given ID.
func (s *MemoryStore) Get(id string) (ledger.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}

// Update replaces an existing entry, keeping its creation timestamp.
// Returns false when the ID is unknown.
func (s *MemoryStore) Update(e ledger.Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.entries[e.ID]
	if !ok {
		return false
	}
	e.CreatedAt = existing.CreatedAt
	s.entries[e.ID] = e
	return true
}

// Delete removes the entry with the given ID, reporting whether it
// existed.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

// List returns the entries matching the filter, sorted by period and
// then by creation time for a stable order.
func (s *MemoryStore) List(f Filter) []ledger.Entry {
	s.mu.RLock()
	matched := make([]ledger.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !f.From.IsZero() && e.Period.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && e.Period.After(f.To) {
			continue
		}
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		matched = append(matched, e)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if c := matched[i].Period.Compare(matched[j].Period); c != 0 {
			return c < 0
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched
}

// Count returns the number of stored entries.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
