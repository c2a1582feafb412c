package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/offering"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ServiceGormRepository struct {
	crud[models.Service]
}

var _ domain.Repository = (*ServiceGormRepository)(nil)

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{crud[models.Service]{
		db:       db,
		notFound: domain.ErrNotFound,
		preloads: []string{"User", "Branches"},
	}}
}

func serviceFilter(f domain.Filter) scope {
	return func(q *gorm.DB) *gorm.DB {
		q = like(q, "service_name", f.Name)
		q = equal(q, "service_value", f.Value)
		q = like(q, "expected_time", f.ExpectedTime)
		q = equal(q, "is_active", f.IsActive)
		q = equal(q, "user_id", f.UserID)
		return q
	}
}

func (r *ServiceGormRepository) Get(ctx context.Context, id string) (*models.Service, error) {
	return r.get(ctx, id)
}

func (r *ServiceGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	return r.list(ctx, serviceFilter(f))
}

func (r *ServiceGormRepository) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) ([]models.Service, int64, error) {
	return r.paginate(ctx, serviceFilter(f), req)
}

func (r *ServiceGormRepository) Insert(ctx context.Context, s *models.Service) error {
	return r.insert(ctx, s)
}

func (r *ServiceGormRepository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.patch(ctx, id, fields)
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id string) (int64, error) {
	return r.delete(ctx, id, cascadeService)
}
