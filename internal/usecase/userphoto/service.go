package userphoto

import (
	"context"
	"log/slog"
	"path"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/userphoto"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/upload"
)

const entity = "user_photo"

type UserLookup interface {
	FindOne(ctx context.Context, id string) (*models.User, error)
}

type Uploader interface {
	Store(ctx context.Context, dir string, f upload.File) (*upload.Result, error)
}

type Service struct {
	repo    domain.Repository
	users   UserLookup
	uploads Uploader
	signer  storage.Signer
	audit   audit.Recorder
}

func NewService(
	repo domain.Repository,
	users UserLookup,
	uploads Uploader,
	signer storage.Signer,
	rec audit.Recorder,
) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		uploads: uploads,
		signer:  signer,
		audit:   rec,
	}
}

// ======================================================
// READS
// ======================================================

func (s *Service) FindOne(ctx context.Context, id string) (*models.UserPhoto, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, p)
	return p, nil
}

func (s *Service) FindAll(ctx context.Context, f domain.Filter) ([]models.UserPhoto, error) {
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		s.refresh(ctx, &rows[i])
	}
	return rows, nil
}

func (s *Service) Paginate(ctx context.Context, f domain.Filter, req pagination.Request) (*pagination.Page[models.UserPhoto], error) {
	rows, total, err := s.repo.Paginate(ctx, f, req)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		s.refresh(ctx, &rows[i])
	}
	return pagination.New(rows, total, req), nil
}

// refresh swaps the stored URL for a live one. On signing failure the
// stored URL is returned as is.
func (s *Service) refresh(ctx context.Context, p *models.UserPhoto) {
	url, err := s.signer.SignedURL(ctx, p.Path)
	if err != nil {
		slog.Warn("refresh photo url failed", "photo_id", p.ID, "error", err)
		return
	}
	p.URL = url
}

// ======================================================
// WRITES
// ======================================================

func (s *Service) Create(ctx context.Context, userID string, f upload.File) (*models.UserPhoto, error) {
	if _, err := s.users.FindOne(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.ensureNoPhoto(ctx, userID); err != nil {
		return nil, err
	}

	res, err := s.uploads.Store(ctx, userDir(userID), f)
	if err != nil {
		return nil, err
	}

	p := &models.UserPhoto{
		OriginalName: res.OriginalName,
		Size:         res.Size,
		Path:         res.Path,
		URL:          res.SignedURL,
		UserID:       userID,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionCreate, entity, p.ID, map[string]any{"user_id": userID, "path": p.Path})

	return s.FindOne(ctx, p.ID)
}

// Update replaces the stored image and optionally moves the photo to
// another user.
func (s *Service) Update(ctx context.Context, id string, f upload.File, userID *string) (*models.UserPhoto, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	owner := current.UserID
	if userID != nil && *userID != current.UserID {
		if _, err := s.users.FindOne(ctx, *userID); err != nil {
			return nil, err
		}
		if err := s.ensureNoPhoto(ctx, *userID); err != nil {
			return nil, err
		}
		owner = *userID
	}

	res, err := s.uploads.Store(ctx, userDir(owner), f)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"original_name": res.OriginalName,
		"size":          res.Size,
		"path":          res.Path,
		"url":           res.SignedURL,
		"user_id":       owner,
	}
	if err := s.repo.Patch(ctx, id, fields); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionUpdate, entity, id, audit.Changed(fields))

	return s.FindOne(ctx, id)
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

func (s *Service) ensureNoPhoto(ctx context.Context, userID string) error {
	exists, err := s.repo.ExistsForUser(ctx, userID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyOwned
	}
	return nil
}

func userDir(userID string) string {
	return path.Join("users", userID)
}
