package cmd

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaghshineh/datahub/pkg/version"
)

func TestVersionCmd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	// Capture stdout since utils.PrintMessage writes directly to os.Stdout.
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	RootCmd.SetArgs([]string{"version"})
	err := Execute()
	assert.NoError(t, err, "'datahub version' should execute without error")

	require.NoError(t, w.Close())
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, readErr := buf.ReadFrom(r)
	require.NoError(t, readErr)

	expected := fmt.Sprintf("datahub %s on %s/%s", version.Version, runtime.GOOS, runtime.GOARCH)
	assert.Contains(t, buf.String(), expected)
}
