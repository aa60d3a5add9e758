// Package oss uploads files to Aliyun OSS through its S3-compatible interface.
//
// The package is deliberately small: it exposes a Client with a single
// UploadFile operation, pure helpers for endpoint normalization and public
// URL construction, and functional options for configuration. Retry,
// chunking, and connection pooling are left to the underlying SDK.
//
// Example:
//
//	client, err := oss.New(
//	    oss.WithEndpoint("oss-cn-hangzhou.aliyuncs.com"),
//	    oss.WithStaticCredentials(id, secret, ""),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := client.UploadFile(ctx, "fine-build", "test/plugin.zip", "dist/plugin.zip")
package oss
