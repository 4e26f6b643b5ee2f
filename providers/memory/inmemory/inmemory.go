// Package inmemory is a concurrency-safe in-process memory store with naive
// keyword relevance, suitable for tests and single-process demos.
package inmemory

import (
	"context"
	"strings"
	"sync"

	"github.com/leofalp/reactor/providers/memory"
)

// Store keeps entries in insertion order and recalls by keyword overlap.
type Store struct {
	mu      sync.RWMutex
	entries []string
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: []string{}}
}

// Ensure Store implements memory.Provider at compile time.
var _ memory.Provider = (*Store)(nil)

// Remember appends entry to the store. The returned error is always nil.
func (s *Store) Remember(_ context.Context, entry string) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	return nil
}

// Count returns the number of stored entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Recall returns up to limit entries sharing at least one whole word with
// query, newest first. When nothing matches, the newest entries are returned
// instead so the model still sees recent history. The returned error is
// always nil.
func (s *Store) Recall(_ context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	words := strings.Fields(strings.ToLower(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]string, 0, limit)
	for i := len(s.entries) - 1; i >= 0 && len(matched) < limit; i-- {
		if containsAnyWord(strings.ToLower(s.entries[i]), words) {
			matched = append(matched, s.entries[i])
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}

	n := min(limit, len(s.entries))
	recent := make([]string, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		recent = append(recent, s.entries[i])
	}
	return recent, nil
}

func containsAnyWord(entry string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	entryWords := strings.Fields(entry)
	for _, w := range words {
		for _, ew := range entryWords {
			if w == strings.Trim(ew, ".,;:!?") {
				return true
			}
		}
	}
	return false
}
