package user

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/security"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

const entity = "user"

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
}

type UpdateInput struct {
	Name            *string
	Email           *string
	Phone           *string
	Password        *string
	CurrentPassword *string
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo             domain.Repository
	audit            audit.Recorder
	checkEmailDomain bool
}

func NewService(repo domain.Repository, rec audit.Recorder, checkEmailDomain bool) *Service {
	return &Service{
		repo:             repo,
		audit:            rec,
		checkEmailDomain: checkEmailDomain,
	}
}

func (s *Service) FindOne(ctx context.Context, id string) (*models.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, validators.NormalizeEmail(email))
}

func (s *Service) FindAll(ctx context.Context, f domain.Filter) ([]models.User, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) (*pagination.Page[models.User], error) {
	rows, total, err := s.repo.Paginate(ctx, f, req)
	if err != nil {
		return nil, err
	}
	return pagination.New(rows, total, req), nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.User, error) {
	email, err := s.checkEmail(in.Email)
	if err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Name:     in.Name,
		Email:    email,
		Password: hash,
		Phone:    in.Phone,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionCreate, entity, u.ID, map[string]any{"user_email": u.Email})

	return s.repo.Get(ctx, u.ID)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.User, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if in.Name != nil {
		fields["user_name"] = *in.Name
	}

	if in.Email != nil {
		email, err := s.checkEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		fields["user_email"] = email
	}

	if in.Phone != nil {
		fields["phone_number"] = *in.Phone
	}

	if in.Password != nil {
		if in.CurrentPassword == nil || *in.CurrentPassword == "" {
			return nil, httperr.ErrBadRequest(
				"current_password_required",
				"current_password is required when password is provided",
			)
		}
		if !security.CheckPassword(current.Password, *in.CurrentPassword) {
			return nil, httperr.ErrUnauthorized("Current password invalid")
		}

		hash, err := security.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password"] = hash
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

func (s *Service) checkEmail(raw string) (string, error) {
	email := validators.NormalizeEmail(raw)
	if !validators.IsEmail(email) {
		return "", httperr.ErrBadRequest("invalid_email", fmt.Sprintf("Email %s invalid", raw))
	}
	if s.checkEmailDomain && !validators.IsEmailDomainValid(email) {
		return "", httperr.ErrBadRequest("invalid_email_domain", fmt.Sprintf("Email domain of %s does not receive mail", raw))
	}
	return email, nil
}
