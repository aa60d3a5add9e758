// Package errors provides error types and handling for OSS upload operations.
package errors

import (
	"errors"
	"fmt"
)

// Error represents an OSS operation error with context about the operation
// that failed. It wraps the underlying SDK error with additional context.
type Error struct {
	// Op is the operation that failed (e.g., "upload", "client initialization")
	Op string

	// Bucket is the OSS bucket name (if applicable)
	Bucket string

	// Key is the object key (if applicable)
	Key string

	// Err is the underlying error from the SDK or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("oss.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("oss.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("oss.%s object %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("oss.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewObjectError creates a new Error with bucket and key context.
func NewObjectError(op, bucket, key string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Key:    key,
		Err:    err,
	}
}

// StatusError reports a non-2xx HTTP status returned by the storage service.
// Its message is the canonical upload failure line consumed by CI logs.
type StatusError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("OSS upload failed, status=%d", e.StatusCode)
}

// Sentinel errors for common upload failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrFileNotFound indicates that the local file to upload does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrMissingEnv indicates that a required environment variable is absent
	// or blank across all of its alias names
	ErrMissingEnv = errors.New("missing required env var")

	// ErrInvalidBucketName indicates that the bucket name is invalid
	ErrInvalidBucketName = errors.New("oss: invalid bucket name")

	// ErrInvalidObjectKey indicates that the object key is invalid
	ErrInvalidObjectKey = errors.New("oss: invalid object key")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("oss: invalid input")
)

// IsFileNotFound checks if an error indicates that the local file was not found.
func IsFileNotFound(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}

// IsMissingEnv checks if an error indicates missing required configuration.
func IsMissingEnv(err error) bool {
	return errors.Is(err, ErrMissingEnv)
}
