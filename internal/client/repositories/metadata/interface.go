// Package metadata is a small key/value table in the local database. The
// session store keeps the credential in it.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value stored under key. found is false when no row exists.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set inserts or replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
