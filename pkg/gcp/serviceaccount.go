package gcp

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/anaghshineh/datahub/errors"
	log "github.com/anaghshineh/datahub/pkg/logger"
	"github.com/anaghshineh/datahub/pkg/perf"
)

// Defaults for the service account key fields Google emits with every key.
const (
	DefaultAuthURI                 = "https://accounts.google.com/o/oauth2/auth"
	DefaultTokenURI                = "https://oauth2.googleapis.com/token"
	DefaultAuthProviderX509CertURL = "https://www.googleapis.com/oauth2/v1/certs"
	DefaultCredentialType          = "service_account"

	// ClientX509CertURLPrefix is the base of the per-account certificate URL
	// derived from the client email when the key omits it.
	ClientX509CertURLPrefix = "https://www.googleapis.com/robot/v1/metadata/x509/"

	credentialFilePattern = "datahub-gcp-credential-*.json"
	errWrapFormat         = "%w: %w"
)

var json = jsoniter.ConfigDefault

// ServiceAccountKey is a GCP service account key supplied inline in a recipe.
// The JSON field names match the key files Google issues, so a materialized
// key is accepted by any Google client library.
type ServiceAccountKey struct {
	ProjectID               string `yaml:"project_id" json:"project_id" mapstructure:"project_id"`
	PrivateKeyID            string `yaml:"private_key_id" json:"private_key_id" mapstructure:"private_key_id"`
	PrivateKey              string `yaml:"private_key" json:"private_key" mapstructure:"private_key"`
	ClientEmail             string `yaml:"client_email" json:"client_email" mapstructure:"client_email"`
	ClientID                string `yaml:"client_id" json:"client_id" mapstructure:"client_id"`
	AuthURI                 string `yaml:"auth_uri,omitempty" json:"auth_uri" mapstructure:"auth_uri"`
	TokenURI                string `yaml:"token_uri,omitempty" json:"token_uri" mapstructure:"token_uri"`
	AuthProviderX509CertURL string `yaml:"auth_provider_x509_cert_url,omitempty" json:"auth_provider_x509_cert_url" mapstructure:"auth_provider_x509_cert_url"`
	Type                    string `yaml:"type,omitempty" json:"type" mapstructure:"type"`
	ClientX509CertURL       string `yaml:"client_x509_cert_url,omitempty" json:"client_x509_cert_url" mapstructure:"client_x509_cert_url"`
}

// Validate checks the required fields, fills in the endpoint defaults, and
// derives the client certificate URL from the client email when the key
// omits it. The derivation happens at most once; an explicitly provided URL
// is never overwritten, and calling Validate again is a no-op.
func (k *ServiceAccountKey) Validate() error {
	defer perf.Track(nil, "gcp.ServiceAccountKey.Validate")()

	if k == nil {
		return errUtils.ErrNilCredential
	}
	if err := k.checkRequired(); err != nil {
		return err
	}

	k.applyDefaults()

	if k.ClientX509CertURL == "" {
		k.ClientX509CertURL = ClientX509CertURLPrefix + k.ClientEmail
		log.Debug("Derived client certificate URL", "client_x509_cert_url", k.ClientX509CertURL)
	}
	return nil
}

func (k *ServiceAccountKey) checkRequired() error {
	required := []struct {
		name  string
		value string
	}{
		{"project_id", k.ProjectID},
		{"private_key_id", k.PrivateKeyID},
		{"private_key", k.PrivateKey},
		{"client_email", k.ClientEmail},
		{"client_id", k.ClientID},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	err := fmt.Errorf("%w: missing required fields: %s",
		errUtils.ErrInvalidServiceAccountKey, strings.Join(missing, ", "))
	return errUtils.Build(err).
		WithHint("Provide the full service account key JSON under `credential` in the recipe").
		Err()
}

func (k *ServiceAccountKey) applyDefaults() {
	if k.AuthURI == "" {
		k.AuthURI = DefaultAuthURI
	}
	if k.TokenURI == "" {
		k.TokenURI = DefaultTokenURI
	}
	if k.AuthProviderX509CertURL == "" {
		k.AuthProviderX509CertURL = DefaultAuthProviderX509CertURL
	}
	if k.Type == "" {
		k.Type = DefaultCredentialType
	}
}

// CreateCredentialTempFile writes the key as indented JSON to a uniquely
// named file and returns the file's absolute path. The file is not removed
// automatically and successive calls produce distinct files. It holds
// plaintext secret material, so callers must log the path only, never the
// content.
func (k *ServiceAccountKey) CreateCredentialTempFile() (string, error) {
	defer perf.Track(nil, "gcp.ServiceAccountKey.CreateCredentialTempFile")()

	if k == nil {
		return "", errUtils.ErrNilCredential
	}

	data, err := json.MarshalIndent(k, "", strings.Repeat(" ", 4))
	if err != nil {
		return "", fmt.Errorf(errWrapFormat, errUtils.ErrCreateCredentialFile, err)
	}

	// os.CreateTemp creates the file 0o600, which is what secret material needs.
	f, err := os.CreateTemp("", credentialFilePattern)
	if err != nil {
		return "", fmt.Errorf(errWrapFormat, errUtils.ErrCreateCredentialFile, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf(errWrapFormat, errUtils.ErrCreateCredentialFile, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf(errWrapFormat, errUtils.ErrCreateCredentialFile, err)
	}

	return f.Name(), nil
}
