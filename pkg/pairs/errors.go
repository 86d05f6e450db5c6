package pairs

import "errors"

var (
	// ErrBucketNotFound is returned when a bucket is absent or has no records.
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrAudioNotFound is returned when the requested audio asset does not exist.
	ErrAudioNotFound = errors.New("audio not found")

	// ErrNoDefaultBucket is returned when no default bucket has been set.
	ErrNoDefaultBucket = errors.New("default bucket not set")

	// ErrMalformedRecord is returned when bulk record text contains a line
	// with a field count other than 2 or 3. Nothing is written in that case.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidBucketName is returned when the bucket name does not meet
	// naming requirements.
	ErrInvalidBucketName = errors.New("invalid bucket name")
)
