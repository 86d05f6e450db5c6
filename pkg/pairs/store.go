// Package pairs implements the bucket store: named collections of
// prompt/response records persisted as one CSV blob per bucket in a
// whole-object blob store, each record bound to a synthesized audio asset.
//
// The storage contract offers no conditional writes and no cross-key
// transactions, and the store adds no locking on top: every mutation is a
// full read-modify-write of the bucket blob, so two concurrent mutations to
// the same bucket race and the write that lands last wins in full. Multi-step
// cascades (rename, bucket delete, bulk synthesis) are not transactional; a
// failure partway leaves a prefix of the intended change applied.
package pairs

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"aidememoire/pkg/blob"
	"aidememoire/pkg/models"
	"aidememoire/pkg/speech"
)

// bucketNamePattern defines the valid format for bucket names: alphanumeric
// with internal hyphens.
var bucketNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

// bucketNameMaxLength is the maximum length for a bucket name.
const bucketNameMaxLength = 64

// Repository is the public operation set of the bucket store.
type Repository interface {
	AddPair(ctx context.Context, bucket, prompt, response string) error
	BulkAppend(ctx context.Context, bucket, content string) error
	GetRandomPair(ctx context.Context, bucket string) (models.Pair, error)
	GetAllPairs(ctx context.Context, bucket string) ([]models.Pair, error)
	UpdatePair(ctx context.Context, bucket, oldPrompt, newPrompt, newResponse string) error
	DeletePair(ctx context.Context, bucket, prompt string) error
	CreateBucket(ctx context.Context, bucket string) error
	ListBuckets(ctx context.Context) ([]string, error)
	DeleteBucket(ctx context.Context, bucket string) error
	RenameBucket(ctx context.Context, oldName, newName string) error
	GetDefaultBucket(ctx context.Context) (string, error)
	SetDefaultBucket(ctx context.Context, bucket string) error
	GetAudio(ctx context.Context, bucket, audioID string) ([]byte, error)
}

// Store implements Repository over a blob store and a speech synthesizer.
type Store struct {
	blobs blob.Store
	audio *audioManager
	ns    string
}

// New creates a bucket store using the given namespace prefix for all blob
// keys. An empty namespace falls back to DefaultNamespace.
func New(blobs blob.Store, synth speech.Synthesizer, namespace string) *Store {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Store{
		blobs: blobs,
		audio: &audioManager{blobs: blobs, synth: synth, ns: namespace},
		ns:    namespace,
	}
}

// ValidateBucketName checks if the bucket name is valid.
func ValidateBucketName(name string) error {
	if len(name) == 0 || len(name) > bucketNameMaxLength {
		return ErrInvalidBucketName
	}
	if !bucketNamePattern.MatchString(name) {
		return ErrInvalidBucketName
	}
	return nil
}

// loadContent reads a bucket's index blob. A missing blob reads as empty
// content, so the first write to a bucket creates it implicitly.
func (s *Store) loadContent(ctx context.Context, bucket string) (string, error) {
	data, err := s.blobs.Get(ctx, indexKey(s.ns, bucket))
	if errors.Is(err, blob.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load bucket %s: %w", bucket, err)
	}
	return string(data), nil
}

func (s *Store) loadIndex(ctx context.Context, bucket string) (*index, error) {
	content, err := s.loadContent(ctx, bucket)
	if err != nil {
		return nil, err
	}
	return parseIndex(content), nil
}

func (s *Store) saveIndex(ctx context.Context, bucket string, idx *index) error {
	if err := s.blobs.Put(ctx, indexKey(s.ns, bucket), []byte(idx.flatten()), contentTypeCSV); err != nil {
		return fmt.Errorf("save bucket %s: %w", bucket, err)
	}
	return nil
}
