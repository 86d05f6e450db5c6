package server

import (
	"fmt"

	"aidememoire/pkg/pairs"
)

// maxTextLength caps prompt and response fields, matching the limits the API
// has always enforced.
const maxTextLength = 1024

func validateBucketName(name string) error {
	return pairs.ValidateBucketName(name)
}

func validateText(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(value) > maxTextLength {
		return fmt.Errorf("%s exceeds %d characters", field, maxTextLength)
	}
	return nil
}
