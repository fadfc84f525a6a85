package gcp

import (
	"strings"

	"google.golang.org/api/option"
)

// AuthOptions configures authentication for Google API clients.
type AuthOptions struct {
	// Credentials is either inline JSON (detected by a leading "{") or a
	// path to a service account key file. Empty means Application Default
	// Credentials.
	Credentials string
}

// ClientOptions converts AuthOptions into Google API client options.
func ClientOptions(opts AuthOptions) []option.ClientOption {
	var clientOpts []option.ClientOption

	if opts.Credentials != "" {
		// Check if it's a JSON string or a file path.
		if strings.HasPrefix(strings.TrimSpace(opts.Credentials), "{") {
			clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(opts.Credentials)))
		} else {
			clientOpts = append(clientOpts, option.WithCredentialsFile(opts.Credentials))
		}
	}

	return clientOpts
}
