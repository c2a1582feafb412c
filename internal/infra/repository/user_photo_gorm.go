package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/userphoto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UserPhotoGormRepository struct {
	crud[models.UserPhoto]
}

var _ domain.Repository = (*UserPhotoGormRepository)(nil)

func NewUserPhotoGormRepository(db *gorm.DB) *UserPhotoGormRepository {
	return &UserPhotoGormRepository{crud[models.UserPhoto]{
		db:       db,
		notFound: domain.ErrNotFound,
		preloads: []string{"User"},
	}}
}

func userPhotoFilter(f domain.Filter) scope {
	return func(q *gorm.DB) *gorm.DB {
		q = like(q, "original_name", f.OriginalName)
		q = equal(q, "user_id", f.UserID)
		return q
	}
}

func (r *UserPhotoGormRepository) Get(ctx context.Context, id string) (*models.UserPhoto, error) {
	return r.get(ctx, id)
}

func (r *UserPhotoGormRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserPhoto{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserPhotoGormRepository) List(ctx context.Context, f domain.Filter) ([]models.UserPhoto, error) {
	return r.list(ctx, userPhotoFilter(f))
}

func (r *UserPhotoGormRepository) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) ([]models.UserPhoto, int64, error) {
	return r.paginate(ctx, userPhotoFilter(f), req)
}

// Insert and Patch report a second live photo for the same user as
// ErrAlreadyOwned; the partial unique index on user_id enforces it.
func (r *UserPhotoGormRepository) Insert(ctx context.Context, p *models.UserPhoto) error {
	return ownerConflict(r.insert(ctx, p))
}

func (r *UserPhotoGormRepository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return ownerConflict(r.patch(ctx, id, fields))
}

func ownerConflict(err error) error {
	if httperr.IsKind(err, httperr.KindConflict) {
		return domain.ErrAlreadyOwned
	}
	return err
}

func (r *UserPhotoGormRepository) Delete(ctx context.Context, id string) (int64, error) {
	return r.delete(ctx, id, nil)
}
