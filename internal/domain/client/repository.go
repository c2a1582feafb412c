package client

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var ErrNotFound = httperr.ErrNotFound("Client not found!")

type Filter struct {
	Name      *string `form:"client_name"`
	FirstName *string `form:"first_name"`
	BirthDate *string `form:"birth_date"`
	Phone     *string `form:"client_phone"`
	IsActive  *bool   `form:"is_active"`
	BranchID  *string `form:"branch_id"`
}

type Repository interface {
	Get(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context, f Filter) ([]models.Client, error)
	Paginate(ctx context.Context, f Filter, req pagination.Request) ([]models.Client, int64, error)
	Insert(ctx context.Context, c *models.Client) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
}
