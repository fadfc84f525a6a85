// Package gcp provides GCP service account credential handling for
// ingestion sources.
//
// Credentials arrive inline in a recipe, get validated and materialized to a
// temp file on disk, and are exposed to Google client libraries through the
// GOOGLE_APPLICATION_CREDENTIALS environment variable. Two lifecycles are
// supported:
//
//   - SourceConfig.Validate sets the variable for the life of the process
//     and leaves the file in place (last write wins when several sources
//     carry credentials).
//   - ActivateCredential returns a CredentialHandle whose Release restores
//     the variable to whatever it held before, including the unset case,
//     and removes the file.
//
// The materialized file contains plaintext secret material. Only its path is
// ever logged.
package gcp
