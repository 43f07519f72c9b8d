package repository

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
)

// Gorm is the database-backed Repository. Rows are soft deleted via the
// is_deleted flag, matching how every model in this service is declared.
type Gorm[T Entity] struct {
	db      *gorm.DB
	orderBy string
}

// NewGorm builds a repository over db. orderBy is the List ordering clause,
// e.g. "order_index asc" or "created_at desc".
func NewGorm[T Entity](db *gorm.DB, orderBy string) *Gorm[T] {
	return &Gorm[T]{db: db, orderBy: orderBy}
}

func (r *Gorm[T]) List(ctx context.Context, filter Filter) ([]T, error) {
	entities := make([]T, 0)
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	for k, v := range filter {
		q = q.Where(k+" = ?", coerce(v))
	}
	if r.orderBy != "" {
		q = q.Order(r.orderBy)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *Gorm[T]) GetByID(ctx context.Context, id uint) (T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity, ErrNotFound
	}
	return entity, err
}

func (r *Gorm[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *Gorm[T]) Update(ctx context.Context, entity *T) error {
	var existing T
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", (*entity).EntityID(), false).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *Gorm[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	res := r.db.WithContext(ctx).Model(&entity).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// coerce turns numeric filter values into ints so postgres does not reject
// a varchar comparison against an integer column.
func coerce(v string) interface{} {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return v
}
