package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belajaradmin/repository"
)

type testItem struct {
	ID    uint
	Name  string
	Group uint
}

func (i testItem) EntityID() uint { return i.ID }

func newTestRepo() *repository.Memory[testItem] {
	return repository.NewMemory(
		func(item testItem, filter repository.Filter) bool {
			if group, ok := filter["group"]; ok && group != strconv.FormatUint(uint64(item.Group), 10) {
				return false
			}
			return true
		},
		func(item *testItem, id uint) { item.ID = id },
	)
}

func groupRule(item testItem) []repository.Filter {
	return []repository.Filter{
		nil,
		{"group": strconv.FormatUint(uint64(item.Group), 10)},
	}
}

func newSyncedItems() (*Synced[testItem], *repository.Memory[testItem], *Store) {
	repo := newTestRepo()
	store := NewStore(0)
	return NewSynced[testItem]("items", repo, store, groupRule), repo, store
}

func TestCreateThenListIncludesEntityOnce(t *testing.T) {
	ctx := context.Background()
	items, _, _ := newSyncedItems()

	// Warm both views so create has something to patch
	_, err := items.List(ctx, nil)
	require.NoError(t, err)
	_, err = items.List(ctx, repository.Filter{"group": "1"})
	require.NoError(t, err)

	created := testItem{Name: "pecahan", Group: 1}
	require.NoError(t, items.Create(ctx, &created))
	require.NotZero(t, created.ID)

	for _, filter := range []repository.Filter{nil, {"group": "1"}} {
		listed, err := items.List(ctx, filter)
		require.NoError(t, err)
		count := 0
		for _, item := range listed {
			if item.ID == created.ID {
				count++
			}
		}
		assert.Equal(t, 1, count, "filter %v", filter)
	}
}

func TestCreateOnlyPatchesMatchingViews(t *testing.T) {
	ctx := context.Background()
	items, repo, _ := newSyncedItems()

	require.NoError(t, repo.Create(ctx, &testItem{Name: "lama", Group: 2}))

	otherGroup, err := items.List(ctx, repository.Filter{"group": "2"})
	require.NoError(t, err)
	require.Len(t, otherGroup, 1)

	created := testItem{Name: "baru", Group: 1}
	require.NoError(t, items.Create(ctx, &created))

	// The group=2 view must not have picked up a group=1 entity
	otherGroup, err = items.List(ctx, repository.Filter{"group": "2"})
	require.NoError(t, err)
	assert.Len(t, otherGroup, 1)
}

func TestUpdatePatchesCachedLists(t *testing.T) {
	ctx := context.Background()
	items, _, _ := newSyncedItems()

	created := testItem{Name: "sebelum", Group: 1}
	require.NoError(t, items.Create(ctx, &created))

	_, err := items.List(ctx, nil)
	require.NoError(t, err)

	created.Name = "sesudah"
	require.NoError(t, items.Update(ctx, &created))

	listed, err := items.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "sesudah", listed[0].Name)
}

func TestUpdateMissingIDLeavesCacheUnchanged(t *testing.T) {
	ctx := context.Background()
	items, _, _ := newSyncedItems()

	created := testItem{Name: "tetap", Group: 1}
	require.NoError(t, items.Create(ctx, &created))

	before, err := items.List(ctx, nil)
	require.NoError(t, err)

	ghost := testItem{ID: 999, Name: "hantu", Group: 1}
	err = items.Update(ctx, &ghost)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	after, err := items.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRemoveTwice(t *testing.T) {
	ctx := context.Background()
	items, _, _ := newSyncedItems()

	created := testItem{Name: "sekali", Group: 1}
	require.NoError(t, items.Create(ctx, &created))

	_, err := items.List(ctx, nil)
	require.NoError(t, err)
	_, err = items.List(ctx, repository.Filter{"group": "1"})
	require.NoError(t, err)

	require.NoError(t, items.Remove(ctx, created.ID))

	for _, filter := range []repository.Filter{nil, {"group": "1"}} {
		listed, err := items.List(ctx, filter)
		require.NoError(t, err)
		assert.Empty(t, listed, "filter %v", filter)
	}

	err = items.Remove(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListNoMatchesIsEmptyNotError(t *testing.T) {
	ctx := context.Background()
	items, _, _ := newSyncedItems()

	created := testItem{Name: "satu", Group: 1}
	require.NoError(t, items.Create(ctx, &created))

	listed, err := items.List(ctx, repository.Filter{"group": "42"})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestGetByIDReadsThroughAndInvalidatesOnUpdate(t *testing.T) {
	ctx := context.Background()
	items, _, store := newSyncedItems()

	created := testItem{Name: "detail", Group: 1}
	require.NoError(t, items.Create(ctx, &created))

	got, err := items.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "detail", got.Name)

	// Change behind the cache, then update through it; the detail key must
	// be refetched rather than served stale.
	created.Name = "diperbarui"
	require.NoError(t, items.Update(ctx, &created))

	_, live := store.Get(DetailKey("items", created.ID))
	assert.False(t, live)

	got, err = items.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "diperbarui", got.Name)

	_, err = items.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

type failingRepo struct {
	inner repository.Repository[testItem]
	fail  error
}

func (f *failingRepo) List(ctx context.Context, filter repository.Filter) ([]testItem, error) {
	return f.inner.List(ctx, filter)
}

func (f *failingRepo) GetByID(ctx context.Context, id uint) (testItem, error) {
	return f.inner.GetByID(ctx, id)
}

func (f *failingRepo) Create(context.Context, *testItem) error { return f.fail }
func (f *failingRepo) Update(context.Context, *testItem) error { return f.fail }
func (f *failingRepo) Delete(context.Context, uint) error      { return f.fail }

func TestFailedMutationLeavesListsIdentical(t *testing.T) {
	ctx := context.Background()
	inner := newTestRepo()
	seeded := testItem{Name: "awal", Group: 1}
	require.NoError(t, inner.Create(ctx, &seeded))

	boom := errors.New("storage down")
	repo := &failingRepo{inner: inner, fail: boom}
	store := NewStore(0)
	items := NewSynced[testItem]("items", repo, store, groupRule)

	before, err := items.List(ctx, nil)
	require.NoError(t, err)
	beforeFiltered, err := items.List(ctx, repository.Filter{"group": "1"})
	require.NoError(t, err)

	assert.ErrorIs(t, items.Create(ctx, &testItem{Name: "gagal", Group: 1}), boom)
	assert.ErrorIs(t, items.Update(ctx, &seeded), boom)
	assert.ErrorIs(t, items.Remove(ctx, seeded.ID), boom)

	after, err := items.List(ctx, nil)
	require.NoError(t, err)
	afterFiltered, err := items.List(ctx, repository.Filter{"group": "1"})
	require.NoError(t, err)

	assert.Equal(t, before, after)
	assert.Equal(t, beforeFiltered, afterFiltered)
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	items, _, _ := newSyncedItems()

	created := testItem{Name: "asli", Group: 1}
	require.NoError(t, items.Create(ctx, &created))

	first, err := items.List(ctx, nil)
	require.NoError(t, err)
	first[0].Name = "dicoret"

	second, err := items.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "asli", second[0].Name)
}
