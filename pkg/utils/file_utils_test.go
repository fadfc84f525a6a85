package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "recipe.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte("source:\n  type: test\n"), 0o644))

	assert.True(t, FileExists(filePath))
	assert.False(t, FileExists(filepath.Join(tempDir, "missing.yaml")))
	assert.False(t, FileExists(tempDir), "directories are not files")
}

func TestIsYaml(t *testing.T) {
	tests := []struct {
		file     string
		expected bool
	}{
		{"recipe.yaml", true},
		{"recipe.yml", true},
		{"recipe.json", false},
		{"recipe", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsYaml(tt.file), "file: %s", tt.file)
	}
}

func TestEnsureDir(t *testing.T) {
	tempDir := t.TempDir()

	nested := filepath.Join(tempDir, "a", "b", "c.yaml")
	require.NoError(t, EnsureDir(nested))

	isDir, err := IsDirectory(filepath.Join(tempDir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, isDir)
}
