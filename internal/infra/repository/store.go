package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

// Store implements create/get/list/update/delete once for any gorm model
// keyed by an "id" column. Entity repositories embed it.
type Store[T any] struct {
	db       *gorm.DB
	notFound error
}

func NewStore[T any](db *gorm.DB, notFound error) Store[T] {
	return Store[T]{db: db, notFound: notFound}
}

func (s Store[T]) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s Store[T]) Create(ctx context.Context, v *T) error {
	return translate(s.conn(ctx).Create(v).Error, s.notFound)
}

func (s Store[T]) Get(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := s.conn(ctx).First(&v, id).Error; err != nil {
		return nil, translate(err, s.notFound)
	}
	return &v, nil
}

func (s Store[T]) List(ctx context.Context, page pagination.Page) ([]T, error) {
	return s.find(ctx, page, nil)
}

// Update applies only the supplied columns and returns the fresh row.
func (s Store[T]) Update(ctx context.Context, id uint, fields map[string]any) (*T, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		err := s.conn(ctx).
			Model(new(T)).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, translate(err, s.notFound)
		}
	}

	return s.Get(ctx, id)
}

func (s Store[T]) Delete(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error, s.notFound)
	}
	if res.RowsAffected == 0 {
		return s.notFound
	}
	return nil
}

// find lists rows matching scope, ordered by id and windowed by page.
func (s Store[T]) find(
	ctx context.Context,
	page pagination.Page,
	scope func(*gorm.DB) *gorm.DB,
) ([]T, error) {

	q := s.conn(ctx)
	if scope != nil {
		q = scope(q)
	}

	var out []T
	err := q.
		Order("id ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&out).Error
	if err != nil {
		return nil, translate(err, s.notFound)
	}
	return out, nil
}

func (s Store[T]) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := s.conn(ctx).
		Model(new(T)).
		Where(query, args...).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
