package upload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"path"
	"strings"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/storage"
)

const (
	MaxFileSize  = 10 << 20
	MaxBulkFiles = 10
	PhotoDir     = "photos"
)

// ======================================================
// TYPES
// ======================================================

type File struct {
	Name string
	Data []byte
}

type Result struct {
	Path         string `json:"path"`
	SignedURL    string `json:"signedUrl"`
	Size         int64  `json:"size"`
	OriginalName string `json:"originalName"`
	ContentType  string `json:"contentType"`
}

func ErrNotImage(name string) error {
	return httperr.ErrBadRequest("invalid_image", fmt.Sprintf("File %s is not an image!", name))
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Probe decodes the image header and returns the format name. Renamed or
// truncated files fail here even when their first bytes look right.
func Probe(f File) (string, error) {
	if len(f.Data) == 0 {
		return "", ErrNotImage(f.Name)
	}

	if isWebP(f.Data) {
		if _, err := webp.DecodeConfig(bytes.NewReader(f.Data)); err != nil {
			return "", ErrNotImage(f.Name)
		}
		return "webp", nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(f.Data))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return "", ErrNotImage(f.Name)
	}
	return format, nil
}

func isWebP(b []byte) bool {
	return len(b) >= 12 && string(b[0:4]) == "RIFF" && string(b[8:12]) == "WEBP"
}

func (s *Service) Upload(ctx context.Context, f File) (*Result, error) {
	return s.Store(ctx, PhotoDir, f)
}

// Store probes f and writes it under dir.
func (s *Service) Store(ctx context.Context, dir string, f File) (*Result, error) {
	format, err := Probe(f)
	if err != nil {
		return nil, err
	}
	return s.put(ctx, dir, f, format)
}

// BulkUpload validates every file before writing any. Writes run
// concurrently and the first failure fails the batch; objects already
// written stay in storage.
func (s *Service) BulkUpload(ctx context.Context, files []File) ([]Result, error) {
	if err := CheckBulkCount(len(files)); err != nil {
		return nil, err
	}

	formats := make([]string, len(files))
	for i, f := range files {
		format, err := Probe(f)
		if err != nil {
			return nil, err
		}
		formats[i] = format
	}

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)

	for i := range files {
		g.Go(func() error {
			res, err := s.put(gctx, PhotoDir, files[i], formats[i])
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) put(ctx context.Context, dir string, f File, format string) (*Result, error) {
	key := path.Join(dir, fmt.Sprintf("%s_%s.%s", uuid.NewString(), sanitizeName(f.Name), extension(format)))
	contentType := "image/" + format

	if err := s.store.Put(ctx, key, contentType, f.Data); err != nil {
		slog.Error("object storage put failed", "key", key, "error", err)
		return nil, fmt.Errorf("put %s: %w", key, err)
	}

	url, err := s.store.SignedURL(ctx, key)
	if err != nil {
		slog.Error("object storage sign failed", "key", key, "error", err)
		return nil, fmt.Errorf("sign %s: %w", key, err)
	}

	return &Result{
		Path:         key,
		SignedURL:    url,
		Size:         int64(len(f.Data)),
		OriginalName: f.Name,
		ContentType:  contentType,
	}, nil
}

// ======================================================
// HELPERS
// ======================================================

func CheckBulkCount(n int) error {
	if n > MaxBulkFiles {
		return httperr.ErrBadRequest("too_many_files", fmt.Sprintf("At most %d files per upload", MaxBulkFiles))
	}
	return nil
}

// FromHeader reads a multipart part into memory.
func FromHeader(fh *multipart.FileHeader) (File, error) {
	if fh.Size > MaxFileSize {
		return File{}, httperr.ErrBadRequest("file_too_large", fmt.Sprintf("File %s exceeds %d bytes", fh.Filename, MaxFileSize))
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	if len(data) > MaxFileSize {
		return File{}, httperr.ErrBadRequest("file_too_large", fmt.Sprintf("File %s exceeds %d bytes", fh.Filename, MaxFileSize))
	}

	return File{Name: fh.Filename, Data: data}, nil
}

func sanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSuffix(name, path.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" || name == "_" {
		return "file"
	}
	return name
}

func extension(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}
