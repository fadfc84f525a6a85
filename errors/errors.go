package errors

import "errors"

// Sentinel errors for configuration loading and validation. Wrap them with
// fmt.Errorf("%w: %w", ...) or enrich them with Build(); match them with errors.Is.
var (
	// ErrInvalidServiceAccountKey indicates a GCP service account key that failed
	// schema validation (missing or malformed required fields).
	ErrInvalidServiceAccountKey = errors.New("invalid GCP service account key")

	// ErrNilCredential indicates a nil credential where one is required.
	ErrNilCredential = errors.New("credential is nil")

	// ErrCreateCredentialFile indicates the credential temp file could not be written.
	ErrCreateCredentialFile = errors.New("failed to create credential file")

	// ErrConfigurationInvalid indicates a configuration value that violates a
	// domain invariant. Distinct from schema validation: the value is well-formed
	// but not allowed.
	ErrConfigurationInvalid = errors.New("invalid configuration")

	// ErrInvalidPattern indicates an allow/deny pattern with a regex that does not compile.
	ErrInvalidPattern = errors.New("invalid filter pattern")

	// ErrInvalidBucketDuration indicates an unknown usage bucket duration.
	ErrInvalidBucketDuration = errors.New("invalid bucket duration")

	// ErrInvalidTimeWindow indicates a usage time window that cannot be honored.
	ErrInvalidTimeWindow = errors.New("invalid time window")

	ErrInvalidRecipe          = errors.New("invalid ingestion recipe")
	ErrRecipeSchemaValidation = errors.New("recipe schema validation failed")
	ErrUnsupportedSourceType  = errors.New("unsupported source type")

	// ErrInvalidFormat indicates an unsupported output format flag value.
	ErrInvalidFormat = errors.New("invalid format")
)
