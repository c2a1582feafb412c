package branch

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/branch"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/offering"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const entity = "branch"

type UserLookup interface {
	FindOne(ctx context.Context, id string) (*models.User, error)
}

type ServiceLookup interface {
	FindOne(ctx context.Context, id string) (*models.Service, error)
}

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	domain.Fields
	ServiceIDs []string
}

// UpdateInput leaves nil fields untouched. A non-nil ServiceIDs replaces
// the offered services, an empty one clears them.
type UpdateInput struct {
	Name         *string
	CNPJ         *string
	Street       *string
	CEP          *string
	City         *string
	District     *string
	LocalNumber  *string
	Phone        *string
	Complements  *string
	OpeningHours *string
	ClosingHours *string
	UserID       *string
	ServiceIDs   *[]string
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo     domain.Repository
	users    UserLookup
	services ServiceLookup
	audit    audit.Recorder
}

func NewService(
	repo domain.Repository,
	users UserLookup,
	services ServiceLookup,
	rec audit.Recorder,
) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		services: services,
		audit:    rec,
	}
}

func (s *Service) FindOne(ctx context.Context, id string) (*models.Branch, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) FindAll(ctx context.Context, f domain.Filter) ([]models.Branch, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) (*pagination.Page[models.Branch], error) {
	rows, total, err := s.repo.Paginate(ctx, f, req)
	if err != nil {
		return nil, err
	}
	return pagination.New(rows, total, req), nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Branch, error) {
	if _, err := s.users.FindOne(ctx, in.UserID); err != nil {
		return nil, err
	}

	services, err := s.resolveServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	b, err := domain.New(in.Fields, services)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionCreate, entity, b.ID, map[string]any{
		"branch_name": b.Name,
		"services":    len(services),
	})

	return s.repo.Get(ctx, b.ID)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Branch, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	if in.UserID != nil {
		if _, err := s.users.FindOne(ctx, *in.UserID); err != nil {
			return nil, err
		}
	}

	var services []models.Service
	if in.ServiceIDs != nil {
		var err error
		if services, err = s.resolveServices(ctx, *in.ServiceIDs); err != nil {
			return nil, err
		}
	}

	if err := domain.CheckHours(in.OpeningHours, in.ClosingHours); err != nil {
		return nil, err
	}

	fields := in.fields()
	if err := s.repo.Patch(ctx, id, fields, services); err != nil {
		return nil, err
	}

	meta := audit.Changed(fields)
	if services != nil {
		meta["services"] = len(services)
	}
	s.audit.Record(ctx, audit.ActionUpdate, entity, id, meta)

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

// resolveServices loads every id once, naming the first missing one.
func (s *Service) resolveServices(ctx context.Context, ids []string) ([]models.Service, error) {
	seen := make(map[string]bool, len(ids))
	out := make([]models.Service, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		svc, err := s.services.FindOne(ctx, id)
		if err != nil {
			if httperr.IsKind(err, httperr.KindNotFound) {
				return nil, offering.ErrMissing(id)
			}
			return nil, err
		}
		out = append(out, *svc)
	}
	return out, nil
}

func (in UpdateInput) fields() map[string]any {
	fields := map[string]any{}
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}

	set("branch_name", in.Name)
	set("cnpj", in.CNPJ)
	set("street", in.Street)
	set("cep", in.CEP)
	set("city", in.City)
	set("district", in.District)
	set("local_number", in.LocalNumber)
	set("branch_phone", in.Phone)
	set("complements", in.Complements)
	set("opening_hours", in.OpeningHours)
	set("closing_hours", in.ClosingHours)
	set("user_id", in.UserID)
	return fields
}
