package gcp

import (
	"os"
	"sync"

	errUtils "github.com/anaghshineh/datahub/errors"
	log "github.com/anaghshineh/datahub/pkg/logger"
	"github.com/anaghshineh/datahub/pkg/perf"
)

// EnvApplicationCredentials is the well-known environment variable Google
// client libraries read to discover ambient credentials.
const EnvApplicationCredentials = "GOOGLE_APPLICATION_CREDENTIALS"

// CurrentCredentialEnv returns the current value of the ambient credential
// variable and whether it is set at all. Pass the result to
// RestoreCredentialEnv to undo a later write.
func CurrentCredentialEnv() (string, bool) {
	return os.LookupEnv(EnvApplicationCredentials)
}

// RestoreCredentialEnv puts the ambient credential variable back to a state
// previously captured with CurrentCredentialEnv, unsetting it when it was
// not set.
func RestoreCredentialEnv(value string, present bool) error {
	defer perf.Track(nil, "gcp.RestoreCredentialEnv")()

	if present {
		return os.Setenv(EnvApplicationCredentials, value)
	}
	return os.Unsetenv(EnvApplicationCredentials)
}

// CredentialHandle pins a materialized service account key as the process's
// ambient GCP credential. Release restores whatever the variable held before
// activation and removes the credential file, so nested activations compose:
// release in reverse order of acquisition and the environment ends up where
// it started.
type CredentialHandle struct {
	mu        sync.Mutex
	path      string
	prevValue string
	prevSet   bool
	released  bool
}

// ActivateCredential validates the key, materializes it to a temp file, and
// points GOOGLE_APPLICATION_CREDENTIALS at that file. The returned handle
// owns the file and the environment write; callers must Release it.
func ActivateCredential(key *ServiceAccountKey) (*CredentialHandle, error) {
	defer perf.Track(nil, "gcp.ActivateCredential")()

	if key == nil {
		return nil, errUtils.ErrNilCredential
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}

	path, err := key.CreateCredentialTempFile()
	if err != nil {
		return nil, err
	}

	prevValue, prevSet := CurrentCredentialEnv()
	if err := os.Setenv(EnvApplicationCredentials, path); err != nil {
		os.Remove(path)
		return nil, err
	}

	log.Debug("Activated GCP credential", "path", path)
	return &CredentialHandle{path: path, prevValue: prevValue, prevSet: prevSet}, nil
}

// Path returns the absolute path of the materialized credential file.
func (h *CredentialHandle) Path() string {
	return h.path
}

// Release restores the ambient credential variable to its pre-activation
// state, including the previously-unset case, and removes the credential
// file. Release is idempotent; only the first call does any work.
func (h *CredentialHandle) Release() error {
	defer perf.Track(nil, "gcp.CredentialHandle.Release")()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return nil
	}
	h.released = true

	if err := RestoreCredentialEnv(h.prevValue, h.prevSet); err != nil {
		return err
	}
	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return err
	}

	log.Debug("Released GCP credential", "path", h.path)
	return nil
}
