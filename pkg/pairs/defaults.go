package pairs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aidememoire/pkg/blob"
)

// GetDefaultBucket reads the default bucket pointer. Returns
// ErrNoDefaultBucket when none is set.
func (s *Store) GetDefaultBucket(ctx context.Context) (string, error) {
	data, err := s.blobs.Get(ctx, defaultKey(s.ns))
	if errors.Is(err, blob.ErrNotFound) {
		return "", ErrNoDefaultBucket
	}
	if err != nil {
		return "", fmt.Errorf("read default bucket: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetDefaultBucket overwrites the default bucket pointer.
func (s *Store) SetDefaultBucket(ctx context.Context, bucket string) error {
	if err := s.blobs.Put(ctx, defaultKey(s.ns), []byte(bucket), contentTypeText); err != nil {
		return fmt.Errorf("set default bucket: %w", err)
	}
	return nil
}
