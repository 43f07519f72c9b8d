package cache

import (
	"context"

	"belajaradmin/repository"
)

// ListRule declares, for one entity, the filters of every list view that
// should contain it. A nil filter means the unfiltered collection list.
// Create consults it to know which cached views to append to; it is the
// declarative patch table, so no call site carries that knowledge.
type ListRule[T repository.Entity] func(entity T) []repository.Filter

// Synced wraps a Repository with confirmed-write cache patching: reads are
// served through the store, writes go to the repository first and patch the
// cached views only after the repository reports success. A failed write
// leaves every cached view untouched.
type Synced[T repository.Entity] struct {
	collection string
	repo       repository.Repository[T]
	store      *Store
	listRule   ListRule[T]
}

// NewSynced wires a collection. listRule may be nil for collections that
// only ever cache the unfiltered list.
func NewSynced[T repository.Entity](collection string, repo repository.Repository[T], store *Store, listRule ListRule[T]) *Synced[T] {
	return &Synced[T]{collection: collection, repo: repo, store: store, listRule: listRule}
}

// Collection returns the cache collection name.
func (s *Synced[T]) Collection() string { return s.collection }

// List serves the collection view for filter, reading through to the
// repository on a miss. A filter matching nothing is an empty slice.
func (s *Synced[T]) List(ctx context.Context, filter repository.Filter) ([]T, error) {
	k := ListKey(s.collection, filter)
	if v, ok := s.store.Get(k); ok {
		if cached, ok := v.([]T); ok {
			return cloneSlice(cached), nil
		}
	}
	entities, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.store.Set(k, cloneSlice(entities))
	return entities, nil
}

// GetByID serves the detail view, fetching the single id independently when
// no list has populated the cache yet.
func (s *Synced[T]) GetByID(ctx context.Context, id uint) (T, error) {
	k := DetailKey(s.collection, id)
	if v, ok := s.store.Get(k); ok {
		if cached, ok := v.(T); ok {
			return cached, nil
		}
	}
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity, err
	}
	s.store.Set(k, entity)
	return entity, nil
}

// Create persists the entity, then inserts it into every cached list view
// the rule says should contain it. Views not in the cache are not created;
// they will be fetched complete on first read.
func (s *Synced[T]) Create(ctx context.Context, entity *T) error {
	if err := s.repo.Create(ctx, entity); err != nil {
		return err
	}
	created := *entity
	for _, filter := range s.ruleFilters(created) {
		k := ListKey(s.collection, filter)
		if v, ok := s.store.Get(k); ok {
			if cached, ok := v.([]T); ok {
				s.store.Set(k, appendEntity(cached, created))
			}
		}
	}
	return nil
}

// Update persists the entity, patches it in place in every cached list that
// holds its id and invalidates the detail view.
func (s *Synced[T]) Update(ctx context.Context, entity *T) error {
	if err := s.repo.Update(ctx, entity); err != nil {
		return err
	}
	updated := *entity
	id := updated.EntityID()
	s.store.UpdateLists(s.collection, func(_ Key, v interface{}) interface{} {
		cached, ok := v.([]T)
		if !ok {
			return v
		}
		for i := range cached {
			if cached[i].EntityID() == id {
				patched := cloneSlice(cached)
				patched[i] = updated
				return patched
			}
		}
		return v
	})
	s.store.Invalidate(DetailKey(s.collection, id))
	return nil
}

// Remove deletes the id, then drops it from every cached list of the
// collection. Deleting a missing id surfaces repository.ErrNotFound and
// touches nothing.
func (s *Synced[T]) Remove(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.store.UpdateLists(s.collection, func(_ Key, v interface{}) interface{} {
		cached, ok := v.([]T)
		if !ok {
			return v
		}
		for i := range cached {
			if cached[i].EntityID() == id {
				patched := cloneSlice(cached)
				return append(patched[:i], patched[i+1:]...)
			}
		}
		return v
	})
	s.store.Drop(DetailKey(s.collection, id))
	return nil
}

func (s *Synced[T]) ruleFilters(entity T) []repository.Filter {
	if s.listRule == nil {
		return []repository.Filter{nil}
	}
	return s.listRule(entity)
}

// appendEntity inserts created at the end of list, replacing an existing
// row with the same id so a view never holds an entity twice.
func appendEntity[T repository.Entity](list []T, created T) []T {
	out := cloneSlice(list)
	for i := range out {
		if out[i].EntityID() == created.EntityID() {
			out[i] = created
			return out
		}
	}
	return append(out, created)
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
