package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
)

type scope = func(*gorm.DB) *gorm.DB

// crud is the shared gorm plumbing behind every entity repository.
// Rows are soft deleted, so every read skips deleted_at IS NOT NULL.
type crud[T any] struct {
	db       *gorm.DB
	notFound error
	preloads []string
}

func (c crud[T]) query(ctx context.Context) *gorm.DB {
	q := c.db.WithContext(ctx)
	for _, p := range c.preloads {
		q = q.Preload(p)
	}
	return q
}

func (c crud[T]) get(ctx context.Context, id string) (*T, error) {
	// Ids are UUIDs; anything else cannot exist and would upset postgres.
	if _, err := uuid.Parse(id); err != nil {
		return nil, c.notFound
	}

	var row T
	if err := c.query(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.notFound
		}
		return nil, err
	}
	return &row, nil
}

func (c crud[T]) list(ctx context.Context, filter scope) ([]T, error) {
	var rows []T
	if err := c.query(ctx).
		Scopes(filter).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (c crud[T]) paginate(ctx context.Context, filter scope, req pagination.Request) ([]T, int64, error) {
	req = req.Normalize()

	var total int64
	if err := c.db.WithContext(ctx).
		Model(new(T)).
		Scopes(filter).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if total == 0 {
		return []T{}, 0, nil
	}

	var rows []T
	if err := c.query(ctx).
		Scopes(filter).
		Order("created_at ASC").
		Limit(req.Limit).
		Offset(req.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (c crud[T]) insert(ctx context.Context, row *T) error {
	return db.MapError(c.db.WithContext(ctx).Create(row).Error)
}

func (c crud[T]) patch(ctx context.Context, id string, fields map[string]any) error {
	return patchRow[T](c.db.WithContext(ctx), id, fields)
}

// delete soft deletes the row after cascade has removed its dependents,
// all in one transaction.
func (c crud[T]) delete(ctx context.Context, id string, cascade func(tx *gorm.DB, id string) error) (int64, error) {
	var affected int64
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cascade != nil {
			if err := cascade(tx, id); err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", id).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// patchRow writes only the given columns. Updates with a map leaves every
// other column untouched and never cascades into associations.
func patchRow[T any](tx *gorm.DB, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return db.MapError(tx.Model(new(T)).Where("id = ?", id).Updates(fields).Error)
}

// --------------------------------------------------
// Filter helpers
// --------------------------------------------------

func like(q *gorm.DB, column string, v *string) *gorm.DB {
	if v == nil {
		return q
	}
	return q.Where(column+" LIKE ?", "%"+*v+"%")
}

func equal[V any](q *gorm.DB, column string, v *V) *gorm.DB {
	if v == nil {
		return q
	}
	return q.Where(column+" = ?", *v)
}
