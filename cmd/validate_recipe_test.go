package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/anaghshineh/datahub/errors"
)

func writeTestRecipe(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateRecipeCmd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	recipePath := writeTestRecipe(t, `
source:
  type: bigquery-usage
  config:
    projects:
      - acme-analytics
    top_n_queries: 25
`)

	RootCmd.SetArgs([]string{"validate", "recipe", "--file", recipePath})
	err := Execute()
	assert.NoError(t, err, "'datahub validate recipe' should accept a valid recipe")
}

func TestValidateRecipeCmd_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	RootCmd.SetArgs([]string{"validate", "recipe", "--file", filepath.Join(t.TempDir(), "missing.yaml")})
	err := Execute()
	require.Error(t, err)
}

func TestValidateRecipeCmd_RuleViolation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	recipePath := writeTestRecipe(t, `
source:
  type: bigquery-usage
  config:
    platform_instance: prod
`)

	RootCmd.SetArgs([]string{"validate", "recipe", "--file", recipePath})
	err := Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrConfigurationInvalid)
	assert.Contains(t, err.Error(), "platform_instance")
}

func TestValidateRecipeCmd_SchemaViolation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	recipePath := writeTestRecipe(t, `
source:
  type: bigquery-usage
  config:
    project: acme-analytics
`)

	RootCmd.SetArgs([]string{"validate", "recipe", "--file", recipePath})
	err := Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrRecipeSchemaValidation)
}

// Keep this test last in the file: --skip-schema sticks on the command's
// flag set for the rest of the process.
func TestValidateRecipeCmd_SkipSchema(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	// The unknown key fails schema validation but decodes fine, so the
	// recipe passes once schema validation is skipped.
	recipePath := writeTestRecipe(t, `
source:
  type: bigquery-usage
  config:
    project: acme-analytics
`)

	RootCmd.SetArgs([]string{"validate", "recipe", "--file", recipePath, "--skip-schema"})
	err := Execute()
	assert.NoError(t, err)
}
