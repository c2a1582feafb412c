package branch

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var ErrNotFound = httperr.ErrNotFound("Branch not found!")

type Filter struct {
	Name        *string `form:"branch_name"`
	CNPJ        *string `form:"cnpj"`
	Street      *string `form:"street"`
	CEP         *string `form:"cep"`
	City        *string `form:"city"`
	District    *string `form:"district"`
	LocalNumber *string `form:"local_number"`
	Phone       *string `form:"branch_phone"`
	UserID      *string `form:"user_id"`
}

type Repository interface {
	Get(ctx context.Context, id string) (*models.Branch, error)
	List(ctx context.Context, f Filter) ([]models.Branch, error)
	Paginate(ctx context.Context, f Filter, req pagination.Request) ([]models.Branch, int64, error)

	// Insert persists the branch and its branchs_services rows.
	Insert(ctx context.Context, b *models.Branch) error

	// Patch updates columns and, when services is non-nil, replaces the
	// offered service set in the same transaction.
	Patch(ctx context.Context, id string, fields map[string]any, services []models.Service) error

	Delete(ctx context.Context, id string) (int64, error)
}
