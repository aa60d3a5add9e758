// Package oss provides endpoint normalization and public URL construction.
package oss

import (
	"net/url"
	"strings"
)

// NormalizeEndpoint returns a fully-qualified endpoint with no trailing slash.
// An endpoint that already carries a scheme prefix is kept as-is apart from
// trailing-slash stripping; a bare host gets the secure scheme prepended.
// The function is idempotent.
func NormalizeEndpoint(raw string) string {
	endpoint := strings.TrimSpace(raw)
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return strings.TrimRight(endpoint, "/")
	}
	return "https://" + strings.Trim(endpoint, "/")
}

// PublicURL composes the bucket-subdomain style download URL for an object.
// The object key is percent-encoded as a URL path; slashes inside the key
// are preserved as path separators.
func PublicURL(endpoint, bucket, key string) string {
	host := strings.TrimPrefix(endpoint, "https://")
	host = strings.TrimPrefix(host, "http://")
	encodedKey := (&url.URL{Path: key}).EscapedPath()
	return "https://" + bucket + "." + host + "/" + encodedKey
}
