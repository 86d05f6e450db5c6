// Package models contains the wire types shared between the store and the
// HTTP API.
package models

// Pair is one prompt/response record with its audio identity.
type Pair struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
	AudioID  string `json:"audioId,omitempty"`
}

// PairListResponse wraps the full contents of a bucket.
type PairListResponse struct {
	Bucket string `json:"bucket"`
	Pairs  []Pair `json:"pairs"`
}

// BucketListResponse wraps the list of bucket names.
type BucketListResponse struct {
	Buckets []string `json:"buckets"`
}

// DefaultBucketResponse carries the default bucket pointer.
type DefaultBucketResponse struct {
	BucketName string `json:"bucketName"`
}
