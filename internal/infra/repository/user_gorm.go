package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UserGormRepository struct {
	crud[models.User]
}

var _ domain.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{crud[models.User]{
		db:       db,
		notFound: domain.ErrNotFound,
		preloads: []string{"Branches"},
	}}
}

func userFilter(f domain.Filter) scope {
	return func(q *gorm.DB) *gorm.DB {
		q = like(q, "user_name", f.Name)
		q = like(q, "user_email", f.Email)
		q = like(q, "phone_number", f.Phone)
		return q
	}
}

func (r *UserGormRepository) Get(ctx context.Context, id string) (*models.User, error) {
	return r.get(ctx, id)
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.query(ctx).First(&u, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) List(ctx context.Context, f domain.Filter) ([]models.User, error) {
	return r.list(ctx, userFilter(f))
}

func (r *UserGormRepository) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) ([]models.User, int64, error) {
	return r.paginate(ctx, userFilter(f), req)
}

func (r *UserGormRepository) Insert(ctx context.Context, u *models.User) error {
	return r.insert(ctx, u)
}

func (r *UserGormRepository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.patch(ctx, id, fields)
}

func (r *UserGormRepository) Delete(ctx context.Context, id string) (int64, error) {
	return r.delete(ctx, id, cascadeUser)
}
