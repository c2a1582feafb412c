package offering

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/offering"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const entity = "service"

type UserLookup interface {
	FindOne(ctx context.Context, id string) (*models.User, error)
}

// ======================================================
// INPUT
// ======================================================

type CreateInput = domain.Fields

type UpdateInput struct {
	Name         *string
	Value        *int
	ExpectedTime *string
	IsActive     *bool
	UserID       *string
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo  domain.Repository
	users UserLookup
	audit audit.Recorder
}

func NewService(repo domain.Repository, users UserLookup, rec audit.Recorder) *Service {
	return &Service{repo: repo, users: users, audit: rec}
}

func (s *Service) FindOne(ctx context.Context, id string) (*models.Service, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) FindAll(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) (*pagination.Page[models.Service], error) {
	rows, total, err := s.repo.Paginate(ctx, f, req)
	if err != nil {
		return nil, err
	}
	return pagination.New(rows, total, req), nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Service, error) {
	if _, err := s.users.FindOne(ctx, in.UserID); err != nil {
		return nil, err
	}

	svc, err := domain.New(in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, svc); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionCreate, entity, svc.ID, map[string]any{"service_name": svc.Name})

	return s.repo.Get(ctx, svc.ID)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Service, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if in.UserID != nil {
		if _, err := s.users.FindOne(ctx, *in.UserID); err != nil {
			return nil, err
		}
		fields["user_id"] = *in.UserID
	}
	if in.ExpectedTime != nil {
		if err := domain.CheckExpectedTime(*in.ExpectedTime); err != nil {
			return nil, err
		}
		fields["expected_time"] = *in.ExpectedTime
	}
	if in.Name != nil {
		fields["service_name"] = *in.Name
	}
	if in.Value != nil {
		fields["service_value"] = *in.Value
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if err := s.repo.Patch(ctx, id, fields); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionUpdate, entity, id, audit.Changed(fields))

	return s.repo.Get(ctx, id)
}

func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return 0, err
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	s.audit.Record(ctx, audit.ActionDelete, entity, id, nil)
	return affected, nil
}
