package models

// AddPairRequest creates or replaces a single pair in a bucket.
type AddPairRequest struct {
	BucketName string `json:"bucketName"`
	Prompt     string `json:"prompt"`
	Response   string `json:"response"`
}

// UpdatePairRequest updates a pair located by its old prompt.
type UpdatePairRequest struct {
	OldPrompt   string `json:"oldPrompt"`
	NewPrompt   string `json:"newPrompt"`
	NewResponse string `json:"newResponse"`
}

// DeletePairRequest removes a pair by prompt.
type DeletePairRequest struct {
	Prompt string `json:"prompt"`
}

// CreateBucketRequest creates an empty bucket.
type CreateBucketRequest struct {
	BucketName string `json:"bucketName"`
}

// RenameBucketRequest renames the bucket addressed by the URL.
type RenameBucketRequest struct {
	NewName string `json:"newName"`
}

// SetDefaultBucketRequest sets the default bucket pointer.
type SetDefaultBucketRequest struct {
	BucketName string `json:"bucketName"`
}
