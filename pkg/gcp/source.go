package gcp

import (
	"fmt"
	"os"

	"google.golang.org/api/option"

	errUtils "github.com/anaghshineh/datahub/errors"
	log "github.com/anaghshineh/datahub/pkg/logger"
	"github.com/anaghshineh/datahub/pkg/perf"
	"github.com/anaghshineh/datahub/pkg/schema"
	"github.com/anaghshineh/datahub/pkg/utils"
)

// SourceConfig is the base configuration for ingestion sources that talk to
// GCP: the shared platform fields plus an optional inline service account
// credential.
type SourceConfig struct {
	schema.PlatformSourceConfig `yaml:",inline" mapstructure:",squash"`

	Credential *ServiceAccountKey `yaml:"credential,omitempty" json:"credential,omitempty" mapstructure:"credential"`

	// credentialsPath is set when Validate materializes the credential.
	// It is process state, not configuration, so it never serializes.
	credentialsPath string
}

// NewSourceConfig decodes raw recipe input into a SourceConfig and validates
// it. When the recipe carries a credential, the credential file exists and
// GOOGLE_APPLICATION_CREDENTIALS points at it by the time NewSourceConfig
// returns.
func NewSourceConfig(input map[string]any) (*SourceConfig, error) {
	defer perf.Track(nil, "gcp.NewSourceConfig")()

	cfg := &SourceConfig{}
	if err := utils.DecodeInto(input, cfg); err != nil {
		return nil, fmt.Errorf(errWrapFormat, errUtils.ErrInvalidRecipe, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies defaults and, when a credential is present, validates it,
// materializes it to a temp file, and sets GOOGLE_APPLICATION_CREDENTIALS to
// the file's path. The environment write is process-wide and last-write-wins
// across configs. The file is left in place when the config is discarded;
// use ActivateCredential instead when scoped cleanup matters.
func (c *SourceConfig) Validate() error {
	defer perf.Track(nil, "gcp.SourceConfig.Validate")()

	c.ApplyDefaults()

	if c.Credential == nil {
		return nil
	}

	if err := c.Credential.Validate(); err != nil {
		return err
	}

	path, err := c.Credential.CreateCredentialTempFile()
	if err != nil {
		return err
	}
	log.Debug("Creating temporary credential file", "path", path)

	c.credentialsPath = path
	if err := os.Setenv(EnvApplicationCredentials, path); err != nil {
		return fmt.Errorf("setting %s: %w", EnvApplicationCredentials, err)
	}
	return nil
}

// CredentialsPath returns the path of the materialized credential file, or
// "" when the config carries no credential or Validate has not run.
func (c *SourceConfig) CredentialsPath() string {
	return c.credentialsPath
}

// ClientOptions returns Google API client options for this source. With no
// inline credential the slice is empty and the client libraries fall back to
// Application Default Credentials, which honors the variable set by Validate.
func (c *SourceConfig) ClientOptions() []option.ClientOption {
	return ClientOptions(AuthOptions{Credentials: c.credentialsPath})
}
