// Package testutil provides test utilities and mocks for upload operations.
// This package is internal and should only be used for testing within this module.
package testutil

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/fine-build/oss-upload/internal/ossapi"
)

// MockClient is a mock implementation of the ossapi.API interface for testing.
// It allows customization of each storage operation through function fields.
type MockClient struct {
	PutObjectFunc func(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// PutObject mocks the PutObject operation.
func (m *MockClient) PutObject(
	ctx context.Context,
	params *s3.PutObjectInput,
	optFns ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

// Verify the mock satisfies the interface it stands in for
var _ ossapi.API = (*MockClient)(nil)
