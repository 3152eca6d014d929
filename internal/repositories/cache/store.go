// Package cache implements the one-time result store behind download
// tokens: a rendered export is stored once, fetched once, then gone.
package cache

import (
	"context"
	"time"
)

// StoredResult is the payload behind a download token.
type StoredResult struct {
	Filename string `json:"filename"`
	CSV      []byte `json:"csv"`
}

// ResultStore keeps rendered exports until their single download.
type ResultStore interface {
	Put(ctx context.Context, token string, result StoredResult, ttl time.Duration) error

	// Take returns the stored result and removes it. The second return is
	// false when the token is unknown, expired, or already taken.
	Take(ctx context.Context, token string) (StoredResult, bool, error)

	Close() error
}
