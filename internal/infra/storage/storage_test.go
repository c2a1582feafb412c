package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSigner struct {
	calls int
	err   error
}

func (s *countingSigner) SignedURL(_ context.Context, key string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "https://signed/" + key, nil
}

type memCache struct {
	mu      sync.Mutex
	entries map[string]string
	ttls    map[string]time.Duration
	getErr  error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key, url string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = url
	m.ttls[key] = ttl
	return nil
}

func TestCachedSignerSignsOncePerKey(t *testing.T) {
	signer := &countingSigner{}
	cache := newMemCache()
	c := NewCachedSigner(signer, cache, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		url, err := c.SignedURL(ctx, "users/1/a.png")
		require.NoError(t, err)
		assert.Equal(t, "https://signed/users/1/a.png", url)
	}

	assert.Equal(t, 1, signer.calls)
	assert.Equal(t, time.Hour-time.Minute, cache.ttls["users/1/a.png"])
}

func TestCachedSignerFallsBackWhenCacheFails(t *testing.T) {
	signer := &countingSigner{}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	c := NewCachedSigner(signer, cache, time.Hour)

	url, err := c.SignedURL(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "https://signed/k", url)
}

func TestCachedSignerPropagatesSignError(t *testing.T) {
	signer := &countingSigner{err: errors.New("denied")}
	c := NewCachedSigner(signer, newMemCache(), time.Hour)

	_, err := c.SignedURL(context.Background(), "k")
	assert.EqualError(t, err, "denied")
}

func TestCachedSignerShortExpiry(t *testing.T) {
	c := NewCachedSigner(&countingSigner{}, newMemCache(), 30*time.Second)
	assert.Equal(t, 15*time.Second, c.ttl)
}

func TestDiskPutAndURL(t *testing.T) {
	dir := t.TempDir()
	d := NewDisk(dir, "")
	ctx := context.Background()

	require.NoError(t, d.Put(ctx, "users/u1/photo.png", "image/png", []byte("png")))

	b, err := os.ReadFile(filepath.Join(dir, "users", "u1", "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(b))

	url, err := d.SignedURL(ctx, "users/u1/photo.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/users/u1/photo.png", url)
}

func TestDiskKeepsKeysInsideBaseDir(t *testing.T) {
	dir := t.TempDir()
	d := NewDisk(dir, "/files/")
	require.NoError(t, d.Put(context.Background(), "../../escape.txt", "text/plain", []byte("x")))

	_, err := os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)

	_, err = d.SignedURL(context.Background(), "")
	assert.Error(t, err)

	url, err := d.SignedURL(context.Background(), "a.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/files/"))
}

func TestNewS3PresignsWithoutNetwork(t *testing.T) {
	s := NewS3(S3Config{
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "scheduleStorage",
		AccessKey: "key",
		SecretKey: "secret",
		Expiry:    time.Hour,
	})

	url, err := s.SignedURL(context.Background(), "users/u1/photo.png")
	require.NoError(t, err)
	assert.Contains(t, url, "http://localhost:9000/scheduleStorage/users/u1/photo.png")
	assert.Contains(t, url, "X-Amz-Expires=3600")
	assert.Equal(t, time.Hour, s.Expiry())
}
