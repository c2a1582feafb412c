package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const StaticURLBase = "/uploads"

// Disk keeps objects under a local directory served statically. It is the
// fallback when no object storage is configured.
type Disk struct {
	baseDir    string
	staticBase string
}

var _ Store = (*Disk)(nil)

func NewDisk(baseDir, staticBase string) *Disk {
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Disk{baseDir: baseDir, staticBase: strings.TrimRight(staticBase, "/")}
}

func (d *Disk) Dir() string {
	return d.baseDir
}

func (d *Disk) StaticBase() string {
	return d.staticBase
}

func (d *Disk) Put(_ context.Context, key, _ string, body []byte) error {
	abs, err := d.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}
	if err := os.WriteFile(abs, body, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (d *Disk) SignedURL(_ context.Context, key string) (string, error) {
	if _, err := d.resolve(key); err != nil {
		return "", err
	}
	return d.staticBase + "/" + path.Clean(key), nil
}

// resolve maps key inside baseDir and refuses keys escaping it.
func (d *Disk) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(d.baseDir, filepath.FromSlash(clean)), nil
}
