package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// URLCache remembers signed URLs until shortly before they expire.
type URLCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, url string, ttl time.Duration) error
}

// CachedSigner serves signed URLs from cache and signs on a miss.
// Cache failures degrade to signing every time.
type CachedSigner struct {
	signer Signer
	cache  URLCache
	ttl    time.Duration
}

var _ Signer = (*CachedSigner)(nil)

// safetyMargin keeps cached URLs from being handed out moments before expiry.
const safetyMargin = time.Minute

func NewCachedSigner(signer Signer, cache URLCache, expiry time.Duration) *CachedSigner {
	ttl := expiry - safetyMargin
	if ttl <= 0 {
		ttl = expiry / 2
	}
	return &CachedSigner{signer: signer, cache: cache, ttl: ttl}
}

func (c *CachedSigner) SignedURL(ctx context.Context, key string) (string, error) {
	if c.ttl <= 0 {
		return c.signer.SignedURL(ctx, key)
	}

	if url, ok, err := c.cache.Get(ctx, key); err != nil {
		slog.Warn("signed url cache read failed", "key", key, "error", err)
	} else if ok {
		return url, nil
	}

	url, err := c.signer.SignedURL(ctx, key)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, key, url, c.ttl); err != nil {
		slog.Warn("signed url cache write failed", "key", key, "error", err)
	}
	return url, nil
}

type RedisURLCache struct {
	client *redis.Client
	prefix string
}

var _ URLCache = (*RedisURLCache)(nil)

func NewRedisURLCache(client *redis.Client) *RedisURLCache {
	return &RedisURLCache{client: client, prefix: "signed-url:"}
}

// OpenRedis parses a redis:// URL and checks the server answers.
func OpenRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (r *RedisURLCache) Get(ctx context.Context, key string) (string, bool, error) {
	url, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (r *RedisURLCache) Set(ctx context.Context, key, url string, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+key, url, ttl).Err()
}
