// Package oss provides the upload operation.
package oss

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"

	osserrors "github.com/fine-build/oss-upload/errors"
	"github.com/fine-build/oss-upload/internal/validation"
)

// DefaultContentType is the content type used when detection fails.
const DefaultContentType = "application/octet-stream"

// UploadResult contains metadata about a completed upload.
type UploadResult struct {
	// Key is the object key the file was stored under
	Key string

	// Size is the number of bytes transferred
	Size int64

	// ETag is the entity tag returned by the service
	ETag string

	// Duration is the wall-clock time the upload took
	Duration time.Duration
}

// UploadFile uploads a local file to the named bucket under the given key.
//
// The file must exist and be a regular file; this is checked before any
// network interaction. The upload is a single blocking PutObject call —
// the SDK reports every non-2xx response as an error, which is surfaced
// as a StatusError carrying the HTTP status code.
//
// Returns:
//   - *UploadResult: the uploaded object's key, size, ETag and duration
//   - error: ErrFileNotFound, a StatusError, or a wrapped SDK error
func (c *Client) UploadFile(
	ctx context.Context,
	bucket, key, path string,
	opts ...UploadOption,
) (*UploadResult, error) {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return nil, err
	}
	if err := validation.ValidateObjectKey(key); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", osserrors.ErrFileNotFound, path)
	}

	cfg := &UploadConfig{
		ContentType: DefaultContentType,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Detect content type from file contents unless explicitly set
	if cfg.ContentType == DefaultContentType {
		if mtype, derr := mimetype.DetectFile(path); derr == nil {
			cfg.ContentType = mtype.String()
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, osserrors.NewObjectError("upload", bucket, key, err)
	}
	defer file.Close()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(cfg.ContentType),
		ContentLength: aws.Int64(info.Size()),
	}
	if len(cfg.Metadata) > 0 {
		input.Metadata = cfg.Metadata
	}

	startTime := time.Now()

	output, err := c.api.PutObject(ctx, input)
	if err != nil {
		var respErr interface{ HTTPStatusCode() int }
		if errors.As(err, &respErr) {
			return nil, &osserrors.StatusError{StatusCode: respErr.HTTPStatusCode()}
		}
		return nil, osserrors.NewObjectError("upload", bucket, key, err)
	}

	return &UploadResult{
		Key:      key,
		Size:     info.Size(),
		ETag:     aws.ToString(output.ETag),
		Duration: time.Since(startTime),
	}, nil
}
