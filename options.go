// Package oss provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package oss

import "net/http"

// WithEndpoint sets the OSS service endpoint.
// The endpoint may be given with or without a scheme prefix; it is
// normalized with NormalizeEndpoint before use.
func WithEndpoint(endpoint string) Option {
	return func(c *ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithRegion sets the signing region.
// OSS does not route on it, but the SDK signature process requires one.
// Default is "auto".
func WithRegion(region string) Option {
	return func(c *ClientConfig) {
		c.Region = region
	}
}

// WithStaticCredentials sets the credential material explicitly.
// A non-empty securityToken switches the client to temporary STS
// credentials; an empty token means the standard two-factor key pair.
func WithStaticCredentials(accessKeyID, accessKeySecret, securityToken string) Option {
	return func(c *ClientConfig) {
		c.AccessKeyID = accessKeyID
		c.AccessKeySecret = accessKeySecret
		c.SecurityToken = securityToken
	}
}

// WithPathStyle forces path-style addressing instead of bucket-subdomain style.
// This is only useful against local S3-compatible test services.
// Default is false (bucket-subdomain style).
func WithPathStyle(usePathStyle bool) Option {
	return func(c *ClientConfig) {
		c.UsePathStyle = usePathStyle
	}
}

// WithHTTPClient overrides the HTTP client used for requests.
// Use this to set timeouts or proxies when the defaults don't fit.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *ClientConfig) {
		c.HTTPClient = httpClient
	}
}

// UploadConfig holds per-upload settings applied by UploadOption values.
type UploadConfig struct {
	// ContentType is the MIME type stored with the object; when left at
	// the default it is detected from the file contents
	ContentType string

	// Metadata is attached to the object as user metadata
	Metadata map[string]string
}

// UploadOption configures a single upload.
type UploadOption func(*UploadConfig)

// WithContentType sets the Content-Type stored with the object,
// bypassing detection.
func WithContentType(contentType string) UploadOption {
	return func(c *UploadConfig) {
		c.ContentType = contentType
	}
}

// WithMetadata attaches user metadata to the uploaded object.
func WithMetadata(metadata map[string]string) UploadOption {
	return func(c *UploadConfig) {
		c.Metadata = metadata
	}
}
