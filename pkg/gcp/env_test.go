package gcp

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/anaghshineh/datahub/errors"
)

func TestActivateCredentialSetsEnvAndReleaseRestores(t *testing.T) {
	t.Setenv(EnvApplicationCredentials, "/previous/creds.json")

	handle, err := ActivateCredential(validServiceAccountKey())
	require.NoError(t, err)

	assert.Equal(t, handle.Path(), os.Getenv(EnvApplicationCredentials))
	_, err = os.Stat(handle.Path())
	require.NoError(t, err)

	require.NoError(t, handle.Release())

	assert.Equal(t, "/previous/creds.json", os.Getenv(EnvApplicationCredentials))
	_, err = os.Stat(handle.Path())
	assert.True(t, os.IsNotExist(err), "credential file must be removed on release")
}

func TestCredentialHandleReleaseRestoresUnset(t *testing.T) {
	// t.Setenv registers restoration of the original state, then the test
	// exercises the previously-unset case.
	t.Setenv(EnvApplicationCredentials, "placeholder")
	require.NoError(t, os.Unsetenv(EnvApplicationCredentials))

	handle, err := ActivateCredential(validServiceAccountKey())
	require.NoError(t, err)

	_, set := os.LookupEnv(EnvApplicationCredentials)
	assert.True(t, set)

	require.NoError(t, handle.Release())

	_, set = os.LookupEnv(EnvApplicationCredentials)
	assert.False(t, set, "variable must be unset again after release")
}

func TestCredentialHandleReleaseIsIdempotent(t *testing.T) {
	t.Setenv(EnvApplicationCredentials, "/previous/creds.json")

	handle, err := ActivateCredential(validServiceAccountKey())
	require.NoError(t, err)

	require.NoError(t, handle.Release())
	require.NoError(t, handle.Release())

	assert.Equal(t, "/previous/creds.json", os.Getenv(EnvApplicationCredentials))
}

func TestNestedActivationsCompose(t *testing.T) {
	t.Setenv(EnvApplicationCredentials, "/outermost.json")

	outer, err := ActivateCredential(validServiceAccountKey())
	require.NoError(t, err)

	inner, err := ActivateCredential(validServiceAccountKey())
	require.NoError(t, err)

	assert.Equal(t, inner.Path(), os.Getenv(EnvApplicationCredentials))

	require.NoError(t, inner.Release())
	assert.Equal(t, outer.Path(), os.Getenv(EnvApplicationCredentials))

	require.NoError(t, outer.Release())
	assert.Equal(t, "/outermost.json", os.Getenv(EnvApplicationCredentials))
}

func TestActivateCredentialNilKey(t *testing.T) {
	_, err := ActivateCredential(nil)
	assert.ErrorIs(t, err, errUtils.ErrNilCredential)
}

func TestActivateCredentialInvalidKeyLeavesEnvUntouched(t *testing.T) {
	t.Setenv(EnvApplicationCredentials, "/previous/creds.json")

	key := validServiceAccountKey()
	key.PrivateKey = ""

	_, err := ActivateCredential(key)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidServiceAccountKey)
	assert.Equal(t, "/previous/creds.json", os.Getenv(EnvApplicationCredentials))
}

func TestRestoreCredentialEnv(t *testing.T) {
	t.Setenv(EnvApplicationCredentials, "original")

	require.NoError(t, RestoreCredentialEnv("/restored.json", true))
	assert.Equal(t, "/restored.json", os.Getenv(EnvApplicationCredentials))

	require.NoError(t, RestoreCredentialEnv("", false))
	_, set := os.LookupEnv(EnvApplicationCredentials)
	assert.False(t, set)
}
