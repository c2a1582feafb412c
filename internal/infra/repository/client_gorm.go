package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ClientGormRepository struct {
	crud[models.Client]
}

var _ domain.Repository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{crud[models.Client]{
		db:       db,
		notFound: domain.ErrNotFound,
		preloads: []string{"Branch"},
	}}
}

func clientFilter(f domain.Filter) scope {
	return func(q *gorm.DB) *gorm.DB {
		q = like(q, "client_name", f.Name)
		q = like(q, "first_name", f.FirstName)
		q = like(q, "birth_date", f.BirthDate)
		q = like(q, "client_phone", f.Phone)
		q = equal(q, "is_active", f.IsActive)
		q = equal(q, "branch_id", f.BranchID)
		return q
	}
}

func (r *ClientGormRepository) Get(ctx context.Context, id string) (*models.Client, error) {
	return r.get(ctx, id)
}

func (r *ClientGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Client, error) {
	return r.list(ctx, clientFilter(f))
}

func (r *ClientGormRepository) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) ([]models.Client, int64, error) {
	return r.paginate(ctx, clientFilter(f), req)
}

func (r *ClientGormRepository) Insert(ctx context.Context, c *models.Client) error {
	return r.insert(ctx, c)
}

func (r *ClientGormRepository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.patch(ctx, id, fields)
}

func (r *ClientGormRepository) Delete(ctx context.Context, id string) (int64, error) {
	return r.delete(ctx, id, nil)
}
