package repository

import (
	"context"
	"sync"
)

// Matcher reports whether an entity satisfies a filter. The in-memory store
// cannot translate filter keys to columns, so each collection supplies one.
type Matcher[T Entity] func(entity T, filter Filter) bool

// Memory is a map-backed Repository. It stands in for the database in tests
// and in seed mode; data lives only for the life of the process.
type Memory[T Entity] struct {
	mu      sync.RWMutex
	rows    map[uint]T
	order   []uint
	nextID  uint
	match   Matcher[T]
	assign  func(*T, uint)
}

// NewMemory builds an empty in-memory repository. assign stamps a generated
// id onto a created entity (gorm.Model keeps the field, so the caller wires
// it per model).
func NewMemory[T Entity](match Matcher[T], assign func(*T, uint)) *Memory[T] {
	return &Memory[T]{
		rows:   make(map[uint]T),
		nextID: 1,
		match:  match,
		assign: assign,
	}
}

func (r *Memory[T]) List(_ context.Context, filter Filter) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0)
	for _, id := range r.order {
		entity := r.rows[id]
		if len(filter) == 0 || r.match == nil || r.match(entity, filter) {
			out = append(out, entity)
		}
	}
	return out, nil
}

func (r *Memory[T]) GetByID(_ context.Context, id uint) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entity, ok := r.rows[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return entity, nil
}

func (r *Memory[T]) Create(_ context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := (*entity).EntityID()
	if id == 0 {
		id = r.nextID
		if r.assign != nil {
			r.assign(entity, id)
		}
	}
	if id >= r.nextID {
		r.nextID = id + 1
	}
	// A caller-chosen id that already exists replaces the row in place so
	// the entity never lists twice.
	if _, exists := r.rows[id]; !exists {
		r.order = append(r.order, id)
	}
	r.rows[id] = *entity
	return nil
}

func (r *Memory[T]) Update(_ context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := (*entity).EntityID()
	if _, ok := r.rows[id]; !ok {
		return ErrNotFound
	}
	r.rows[id] = *entity
	return nil
}

func (r *Memory[T]) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.rows, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
