package userphoto

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	ErrNotFound     = httperr.ErrNotFound("Photo not found!")
	ErrAlreadyOwned = httperr.ErrConflict("User already has a photo", nil)
)

type Filter struct {
	OriginalName *string `form:"original_name"`
	UserID       *string `form:"user_id"`
}

type Repository interface {
	Get(ctx context.Context, id string) (*models.UserPhoto, error)
	ExistsForUser(ctx context.Context, userID string) (bool, error)
	List(ctx context.Context, f Filter) ([]models.UserPhoto, error)
	Paginate(ctx context.Context, f Filter, req pagination.Request) ([]models.UserPhoto, int64, error)
	Insert(ctx context.Context, p *models.UserPhoto) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
}
