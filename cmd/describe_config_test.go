package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/anaghshineh/datahub/errors"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything fn printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, readErr := buf.ReadFrom(r)
	require.NoError(t, readErr)
	return buf.String()
}

func TestDescribeConfigCmd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	out := captureStdout(t, func() {
		RootCmd.SetArgs([]string{"describe", "config"})
		assert.NoError(t, Execute())
	})

	assert.Contains(t, out, `"logs"`)
	assert.Contains(t, out, `"file": "/dev/stderr"`)
	assert.Contains(t, out, `"level": "Info"`)
}

func TestDescribeConfigCmdYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	out := captureStdout(t, func() {
		RootCmd.SetArgs([]string{"describe", "config", "--format", "yaml"})
		assert.NoError(t, Execute())
	})

	assert.Contains(t, out, "logs:")
	assert.Contains(t, out, "file: /dev/stderr")
	assert.Contains(t, out, "level: Info")
}

func TestDescribeConfigCmdWriteToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	outFile := filepath.Join(t.TempDir(), "config.yaml")
	RootCmd.SetArgs([]string{"describe", "config", "--format", "yaml", "--file", outFile})
	require.NoError(t, Execute())

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level: Info")
}

func TestDescribeConfigCmdInvalidFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	RootCmd.SetArgs([]string{"describe", "config", "--format", "toml"})
	err := Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "toml")
}
