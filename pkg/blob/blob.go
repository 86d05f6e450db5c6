// Package blob defines the whole-object storage contract the pair store is
// built on: get/put/list/delete/copy of entire objects, strong per-key
// consistency, and no cross-key atomicity. Anything that satisfies Store
// (local filesystem, in-memory map, an S3-compatible service) can back the
// system.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the requested key does not exist.
var ErrNotFound = errors.New("blob not found")

// Store abstracts raw object I/O. Keys are slash-separated paths.
type Store interface {
	// Get retrieves the object at key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put writes data to key with the given content type, replacing any
	// existing object.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Delete removes the object at key.
	// Returns ErrNotFound if the key does not exist.
	Delete(ctx context.Context, key string) error

	// List returns all keys with the given prefix, sorted lexicographically.
	List(ctx context.Context, prefix string) ([]string, error)

	// Copy duplicates the object at srcKey to dstKey.
	// Returns ErrNotFound if srcKey does not exist.
	Copy(ctx context.Context, srcKey, dstKey string) error
}
