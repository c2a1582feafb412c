// Package offering holds the rules for sellable services. The name avoids
// clashing with the service layer.
package offering

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var ErrNotFound = httperr.ErrNotFound("Service not found!")

// ErrMissing reports a referenced service id that does not exist.
func ErrMissing(id string) error {
	return httperr.ErrNotFoundf("Service with ID %s not found.", id)
}

type Filter struct {
	Name         *string `form:"service_name"`
	Value        *int    `form:"service_value"`
	ExpectedTime *string `form:"expected_time"`
	IsActive     *bool   `form:"is_active"`
	UserID       *string `form:"user_id"`
}

type Repository interface {
	Get(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context, f Filter) ([]models.Service, error)
	Paginate(ctx context.Context, f Filter, req pagination.Request) ([]models.Service, int64, error)
	Insert(ctx context.Context, s *models.Service) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
}
