package cache

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"belajaradmin/repository"
)

// Key identifies one cached view: a collection list (optionally narrowed by
// a filter) or a single entity detail.
type Key string

// ListKey builds the key for a collection view, e.g. "questions" or
// "questions?topic_id=3". The filter encoding is canonical, so the same
// filter always lands on the same entry.
func ListKey(collection string, filter repository.Filter) Key {
	if enc := filter.Encode(); enc != "" {
		return Key(collection + "?" + enc)
	}
	return Key(collection)
}

// DetailKey builds the key for a single entity view, e.g. "questions/3".
func DetailKey(collection string, id uint) Key {
	return Key(collection + "/" + strconv.FormatUint(uint64(id), 10))
}

type entry struct {
	value    interface{}
	storedAt time.Time
	stale    bool
}

// Store holds cached views behind a mutex. Handlers run concurrently, so
// every patch happens under the write lock; last write wins for entries
// raced on by independent mutations.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[Key]entry
}

// NewStore builds a store whose entries expire after ttl. A zero ttl keeps
// entries until they are invalidated.
func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, entries: make(map[Key]entry)}
}

// Get returns the live value under k. Stale or expired entries miss.
func (s *Store) Get(k Key) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[k]
	if !ok || e.stale || s.expired(e) {
		return nil, false
	}
	return e.value, true
}

// Set stores v under k, clearing any staleness.
func (s *Store) Set(k Key, v interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[k] = entry{value: v, storedAt: time.Now()}
}

// Invalidate marks k stale; the next read refetches. Absent keys are a no-op.
func (s *Store) Invalidate(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[k]; ok {
		e.stale = true
		s.entries[k] = e
	}
}

// Drop removes k entirely.
func (s *Store) Drop(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, k)
}

// UpdateLists applies transform to every live list entry of the collection
// (the unfiltered list and every filtered variant) in one critical section.
func (s *Store) UpdateLists(collection string, transform func(Key, interface{}) interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if !isListKey(k, collection) || e.stale || s.expired(e) {
			continue
		}
		e.value = transform(k, e.value)
		s.entries[k] = e
	}
}

// Purge drops stale and expired entries. Called by the maintenance job.
func (s *Store) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for k, e := range s.entries {
		if e.stale || s.expired(e) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Len reports the number of entries, live or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) expired(e entry) bool {
	return s.ttl > 0 && time.Since(e.storedAt) > s.ttl
}

func isListKey(k Key, collection string) bool {
	ks := string(k)
	return ks == collection || strings.HasPrefix(ks, collection+"?")
}
