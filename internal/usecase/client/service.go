package client

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const entity = "client"

type BranchLookup interface {
	FindOne(ctx context.Context, id string) (*models.Branch, error)
}

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Name      string
	FirstName string
	BirthDate string
	Phone     string
	IsActive  *bool
	BranchID  string
}

type UpdateInput struct {
	Name      *string
	FirstName *string
	BirthDate *string
	Phone     *string
	IsActive  *bool
	BranchID  *string
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo     domain.Repository
	branches BranchLookup
	audit    audit.Recorder
}

func NewService(repo domain.Repository, branches BranchLookup, rec audit.Recorder) *Service {
	return &Service{repo: repo, branches: branches, audit: rec}
}

func (s *Service) FindOne(ctx context.Context, id string) (*models.Client, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) FindAll(ctx context.Context, f domain.Filter) ([]models.Client, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) (*pagination.Page[models.Client], error) {
	rows, total, err := s.repo.Paginate(ctx, f, req)
	if err != nil {
		return nil, err
	}
	return pagination.New(rows, total, req), nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Client, error) {
	if _, err := s.branches.FindOne(ctx, in.BranchID); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	c := &models.Client{
		Name:      in.Name,
		FirstName: in.FirstName,
		BirthDate: in.BirthDate,
		Phone:     in.Phone,
		IsActive:  active,
		BranchID:  in.BranchID,
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionCreate, entity, c.ID, map[string]any{"branch_id": c.BranchID})

	return s.repo.Get(ctx, c.ID)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Client, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if in.BranchID != nil {
		if _, err := s.branches.FindOne(ctx, *in.BranchID); err != nil {
			return nil, err
		}
		fields["branch_id"] = *in.BranchID
	}
	if in.Name != nil {
		fields["client_name"] = *in.Name
	}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.BirthDate != nil {
		fields["birth_date"] = *in.BirthDate
	}
	if in.Phone != nil {
		fields["client_phone"] = *in.Phone
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
