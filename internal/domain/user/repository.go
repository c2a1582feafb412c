package user

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var ErrNotFound = httperr.ErrNotFound("User not found!")

type Filter struct {
	Name  *string `form:"user_name"`
	Email *string `form:"user_email"`
	Phone *string `form:"phone_number"`
}

type Repository interface {
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, f Filter) ([]models.User, error)
	Paginate(ctx context.Context, f Filter, req pagination.Request) ([]models.User, int64, error)
	Insert(ctx context.Context, u *models.User) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
}
