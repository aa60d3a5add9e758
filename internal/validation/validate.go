// Package validation provides centralized input validation logic.
// This includes bucket name validation and object key normalization.
//
// All user inputs are validated before being sent to the storage service.
package validation

import (
	"strings"
	"unicode"

	osserrors "github.com/fine-build/oss-upload/errors"
)

// NormalizeObjectKey strips leading and trailing slashes from an object key.
// Interior slashes are kept verbatim. Returns ErrInvalidObjectKey when the
// key is empty after stripping.
func NormalizeObjectKey(key string) (string, error) {
	normalized := strings.Trim(key, "/")
	if normalized == "" {
		return "", osserrors.NewError("normalizeObjectKey", osserrors.ErrInvalidObjectKey).
			WithMessage("object key must not be empty")
	}
	return normalized, nil
}

// ValidateObjectKey validates that an object key is acceptable to OSS.
// Returns ErrInvalidObjectKey if the key is invalid.
func ValidateObjectKey(key string) error {
	if key == "" {
		return osserrors.NewError("validateObjectKey", osserrors.ErrInvalidObjectKey).
			WithMessage("object key cannot be empty")
	}

	// OSS keys are limited to 1023 bytes of UTF-8
	if len(key) > 1023 {
		return osserrors.NewError("validateObjectKey", osserrors.ErrInvalidObjectKey).
			WithMessage("object key cannot exceed 1023 bytes")
	}

	if hasControlCharacters(key) {
		return osserrors.NewError("validateObjectKey", osserrors.ErrInvalidObjectKey).
			WithMessage("object key cannot contain control characters")
	}

	return nil
}

// ValidateBucketName validates that a bucket name is DNS-compliant according
// to OSS naming rules. Returns ErrInvalidBucketName if the name is invalid.
func ValidateBucketName(bucket string) error {
	if bucket == "" {
		return osserrors.NewError("validateBucketName", osserrors.ErrInvalidBucketName).
			WithMessage("bucket name cannot be empty")
	}

	// Bucket names must be between 3 and 63 characters long
	if len(bucket) < 3 || len(bucket) > 63 {
		return osserrors.NewError("validateBucketName", osserrors.ErrInvalidBucketName).
			WithMessage("bucket name must be between 3 and 63 characters long")
	}

	// Bucket names can consist only of lowercase letters, numbers, and hyphens
	for _, char := range bucket {
		if !isValidBucketChar(char) {
			return osserrors.NewError("validateBucketName", osserrors.ErrInvalidBucketName).
				WithMessage("bucket name can only contain lowercase letters, numbers, and hyphens")
		}
	}

	// Bucket names must not start or end with a hyphen
	if bucket[0] == '-' || bucket[len(bucket)-1] == '-' {
		return osserrors.NewError("validateBucketName", osserrors.ErrInvalidBucketName).
			WithMessage("bucket name cannot start or end with a hyphen")
	}

	return nil
}

// isValidBucketChar checks if a character is valid in a bucket name
func isValidBucketChar(char rune) bool {
	return (char >= '0' && char <= '9') || (char >= 'a' && char <= 'z') || char == '-'
}

// hasControlCharacters checks for control characters in the key
func hasControlCharacters(key string) bool {
	for _, char := range key {
		if unicode.IsControl(char) {
			return true
		}
	}
	return false
}
