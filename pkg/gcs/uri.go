// Package gcs classifies and dissects Google Cloud Storage URIs.
package gcs

import (
	"fmt"
	"strings"
)

// GCSPrefix is the URI scheme prefix of Google Cloud Storage objects.
const GCSPrefix = "gs://"

// IsGCSURI reports whether uri points into Google Cloud Storage.
func IsGCSURI(uri string) bool {
	return strings.HasPrefix(uri, GCSPrefix)
}

// StripGCSPrefix removes the gs:// scheme from a GCS URI.
func StripGCSPrefix(uri string) (string, error) {
	if !IsGCSURI(uri) {
		return "", fmt.Errorf("not a GCS URI: %q", uri)
	}
	return uri[len(GCSPrefix):], nil
}

// BucketName returns the bucket component of a GCS URI.
func BucketName(uri string) (string, error) {
	rest, err := StripGCSPrefix(uri)
	if err != nil {
		return "", err
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", fmt.Errorf("GCS URI %q has no bucket", uri)
	}
	return rest, nil
}

// BucketRelativePath returns the object path below the bucket. The path is
// empty for a bare bucket URI.
func BucketRelativePath(uri string) (string, error) {
	rest, err := StripGCSPrefix(uri)
	if err != nil {
		return "", err
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[i+1:], nil
	}
	return "", nil
}
