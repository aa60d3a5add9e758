// Package ossapi defines the interface for storage operations to enable testing and mocking.
package ossapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API defines the storage operations used by this module.
// OSS is driven through its S3-compatible interface, so the underlying
// client is the AWS SDK S3 client pointed at the OSS endpoint.
type API interface {
	// PutObject uploads an object to the bucket
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Verify that the SDK client implements our interface
var _ API = (*s3.Client)(nil)
