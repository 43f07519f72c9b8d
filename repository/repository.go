package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned when the requested entity id is absent. Deleting
// an id twice surfaces it on the second call.
var ErrNotFound = errors.New("record not found")

// Entity is anything with a stable numeric id.
type Entity interface {
	EntityID() uint
}

// Filter narrows a List call, e.g. {"topic_id": "3"}. Keys are column names.
type Filter map[string]string

// Encode renders the filter as a canonical, order-independent string so it
// can be part of a cache key.
func (f Filter) Encode() string {
	if len(f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(f[k])
	}
	return b.String()
}

// Repository is the storage contract every entity collection implements.
// A filter matching nothing yields an empty slice, not an error.
type Repository[T Entity] interface {
	List(ctx context.Context, filter Filter) ([]T, error)
	GetByID(ctx context.Context, id uint) (T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}
