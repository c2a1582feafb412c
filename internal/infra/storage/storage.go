// Package storage puts uploaded objects somewhere durable and hands out
// time-limited URLs for them.
package storage

import "context"

type Uploader interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

type Signer interface {
	SignedURL(ctx context.Context, key string) (string, error)
}

type Store interface {
	Uploader
	Signer
}
