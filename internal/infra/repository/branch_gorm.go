package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/branch"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type BranchGormRepository struct {
	crud[models.Branch]
}

var _ domain.Repository = (*BranchGormRepository)(nil)

func NewBranchGormRepository(conn *gorm.DB) *BranchGormRepository {
	return &BranchGormRepository{crud[models.Branch]{
		db:       conn,
		notFound: domain.ErrNotFound,
		preloads: []string{"User", "Services", "Clients"},
	}}
}

func branchFilter(f domain.Filter) scope {
	return func(q *gorm.DB) *gorm.DB {
		q = like(q, "branch_name", f.Name)
		q = like(q, "cnpj", f.CNPJ)
		q = like(q, "street", f.Street)
		q = like(q, "cep", f.CEP)
		q = like(q, "city", f.City)
		q = like(q, "district", f.District)
		q = like(q, "local_number", f.LocalNumber)
		q = like(q, "branch_phone", f.Phone)
		q = equal(q, "user_id", f.UserID)
		return q
	}
}

func (r *BranchGormRepository) Get(ctx context.Context, id string) (*models.Branch, error) {
	return r.get(ctx, id)
}

func (r *BranchGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Branch, error) {
	return r.list(ctx, branchFilter(f))
}

func (r *BranchGormRepository) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) ([]models.Branch, int64, error) {
	return r.paginate(ctx, branchFilter(f), req)
}

func (r *BranchGormRepository) Insert(ctx context.Context, b *models.Branch) error {
	// Services already exist: write the join rows, never the services.
	return db.MapError(r.db.WithContext(ctx).Omit("Services.*").Create(b).Error)
}

func (r *BranchGormRepository) Patch(
	ctx context.Context,
	id string,
	fields map[string]any,
	services []models.Service,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := patchRow[models.Branch](tx, id, fields); err != nil {
			return err
		}

		if services == nil {
			return nil
		}

		b := models.Branch{Base: models.Base{ID: id}}
		assoc := tx.Model(&b).Omit("Services.*").Association("Services")
		if len(services) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(services)
	})
}

func (r *BranchGormRepository) Delete(ctx context.Context, id string) (int64, error) {
	return r.delete(ctx, id, cascadeBranch)
}
