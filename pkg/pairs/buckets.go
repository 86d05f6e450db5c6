package pairs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"aidememoire/pkg/blob"
	"aidememoire/pkg/log"
)

// CreateBucket creates an empty index blob for the bucket unless one already
// exists. Idempotent.
func (s *Store) CreateBucket(ctx context.Context, bucket string) error {
	key := indexKey(s.ns, bucket)

	_, err := s.blobs.Get(ctx, key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, blob.ErrNotFound) {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}

	if err := s.blobs.Put(ctx, key, []byte{}, contentTypeCSV); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	log.Info().Str("bucket", bucket).Msg("Bucket created")
	return nil
}

// ListBuckets enumerates the index blobs under the namespace and returns the
// bucket names, sorted lexicographically. Audio assets (nested under a bucket
// subprefix) and the default pointer are not index blobs and are skipped.
func (s *Store) ListBuckets(ctx context.Context) ([]string, error) {
	keys, err := s.blobs.List(ctx, s.ns+"/")
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		rel := strings.TrimPrefix(key, s.ns+"/")
		if strings.Contains(rel, "/") || !strings.HasSuffix(rel, indexExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(rel, indexExt))
	}
	sort.Strings(names)
	return names, nil
}

// DeleteBucket removes every audio asset under the bucket's prefix, then the
// index blob, so a reader never observes an index with a dangling audio
// reference. Not transactional; a failure partway leaves a partial cascade.
func (s *Store) DeleteBucket(ctx context.Context, bucket string) error {
	if err := s.audio.retireAll(ctx, bucket); err != nil {
		return err
	}

	err := s.blobs.Delete(ctx, indexKey(s.ns, bucket))
	if err != nil && !errors.Is(err, blob.ErrNotFound) {
		return fmt.Errorf("delete bucket %s: %w", bucket, err)
	}

	log.Info().Str("bucket", bucket).Msg("Bucket deleted")
	return nil
}

// RenameBucket moves the index blob to the new name, then moves every audio
// asset to the new prefix. Each step is copy-then-delete; a failure partway
// leaves a mixed state with no rollback.
func (s *Store) RenameBucket(ctx context.Context, oldName, newName string) error {
	oldKey := indexKey(s.ns, oldName)
	newKey := indexKey(s.ns, newName)

	if err := s.blobs.Copy(ctx, oldKey, newKey); err != nil {
		return fmt.Errorf("rename bucket %s: %w", oldName, err)
	}
	if err := s.blobs.Delete(ctx, oldKey); err != nil && !errors.Is(err, blob.ErrNotFound) {
		return fmt.Errorf("rename bucket %s: %w", oldName, err)
	}

	if err := s.audio.moveAll(ctx, oldName, newName); err != nil {
		return err
	}

	log.Info().Str("old", oldName).Str("new", newName).Msg("Bucket renamed")
	return nil
}
