// Package metadata is the client's durable key-value slot. The session
// snapshot lives here; the store itself is deliberately schema-free so the
// services stay testable without a real persistence backend.
package metadata

import (
	"context"
)

// Repository is a durable key-value store. Get returns (nil, nil) for an
// absent key; Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
