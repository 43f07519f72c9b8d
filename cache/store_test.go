package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"belajaradmin/repository"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, Key("questions"), ListKey("questions", nil))
	assert.Equal(t, Key("questions?topic_id=3"), ListKey("questions", repository.Filter{"topic_id": "3"}))
	assert.Equal(t, Key("questions/3"), DetailKey("questions", 3))

	// Filter encoding is canonical: key order never changes the cache key
	a := ListKey("topics", repository.Filter{"subject": "math", "grade_level": "2"})
	b := ListKey("topics", repository.Filter{"grade_level": "2", "subject": "math"})
	assert.Equal(t, a, b)
}

func TestStoreGetSetInvalidate(t *testing.T) {
	store := NewStore(0)

	_, ok := store.Get("topics")
	assert.False(t, ok)

	store.Set("topics", []string{"a"})
	v, ok := store.Get("topics")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, v)

	store.Invalidate("topics")
	_, ok = store.Get("topics")
	assert.False(t, ok)

	// Set clears staleness
	store.Set("topics", []string{"b"})
	_, ok = store.Get("topics")
	assert.True(t, ok)
}

func TestStoreTTL(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	store.Set("topics", 1)

	_, ok := store.Get("topics")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = store.Get("topics")
	assert.False(t, ok)
}

func TestUpdateListsOnlyTouchesCollection(t *testing.T) {
	store := NewStore(0)
	store.Set("topics", 1)
	store.Set("topics?subject=math", 1)
	store.Set("topicstats", 1) // shares the prefix, different collection
	store.Set("questions", 1)

	touched := map[Key]bool{}
	store.UpdateLists("topics", func(k Key, v interface{}) interface{} {
		touched[k] = true
		return v
	})

	assert.Equal(t, map[Key]bool{"topics": true, "topics?subject=math": true}, touched)
}

func TestPurge(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	store.Set("old", 1)
	time.Sleep(20 * time.Millisecond)
	store.Set("fresh", 1)
	store.Set("stale", 1)
	store.Invalidate("stale")

	removed := store.Purge()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get("fresh")
	assert.True(t, ok)
}
