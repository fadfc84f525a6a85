package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/anaghshineh/datahub/errors"
)

const validRecipe = `
source:
  type: bigquery-usage
  config:
    projects:
      - analytics-prod
    use_v2_audit_metadata: true
    log_page_size: 250
    max_query_duration: 30m
    bucket_duration: HOUR
    table_pattern:
      allow:
        - "sales.*"
      ignoreCase: false
`

func TestValidateRecipeYAMLValid(t *testing.T) {
	assert.NoError(t, ValidateRecipeYAML(validRecipe, ""))
}

func TestValidateRecipeYAMLMinimal(t *testing.T) {
	assert.NoError(t, ValidateRecipeYAML("source:\n  type: bigquery-usage\n", ""))
}

func TestValidateRecipeYAMLWithCredential(t *testing.T) {
	recipe := `
source:
  type: bigquery-usage
  config:
    credential:
      project_id: p1
      private_key_id: k1
      private_key: secret
      client_email: svc@p1.iam.gserviceaccount.com
      client_id: "123"
`
	assert.NoError(t, ValidateRecipeYAML(recipe, ""))
}

func TestValidateRecipeYAMLFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing source", "pipeline_name: x\n"},
		{"missing source type", "source:\n  config: {}\n"},
		{"empty source type", "source:\n  type: \"\"\n"},
		{"wrong scalar type", "source:\n  type: bigquery-usage\n  config:\n    log_page_size: lots\n"},
		{"zero log_page_size", "source:\n  type: bigquery-usage\n  config:\n    log_page_size: 0\n"},
		{"unknown config key", "source:\n  type: bigquery-usage\n  config:\n    project: typo\n"},
		{"bad bucket_duration", "source:\n  type: bigquery-usage\n  config:\n    bucket_duration: WEEK\n"},
		{"credential missing fields", "source:\n  type: bigquery-usage\n  config:\n    credential:\n      project_id: p1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecipeYAML(tt.content, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, errUtils.ErrRecipeSchemaValidation)
		})
	}
}

func TestValidateRecipeYAMLMalformed(t *testing.T) {
	err := ValidateRecipeYAML("source: [unbalanced\n", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidRecipe)
}

func TestValidateRecipeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validRecipe), 0o644))

	assert.NoError(t, ValidateRecipeFile(path, ""))
}

func TestValidateRecipeFileMissing(t *testing.T) {
	err := ValidateRecipeFile(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidRecipe)
}

func TestValidateRecipeYAMLSchemaOverride(t *testing.T) {
	// A permissive schema accepts a recipe the embedded schema rejects.
	schemaPath := filepath.Join(t.TempDir(), "permissive.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "object"}`), 0o644))

	content := "anything: goes\n"
	require.Error(t, ValidateRecipeYAML(content, ""))
	assert.NoError(t, ValidateRecipeYAML(content, schemaPath))
}

func TestValidateRecipeYAMLSchemaOverrideMissingFile(t *testing.T) {
	err := ValidateRecipeYAML(validRecipe, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrRecipeSchemaValidation)
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	err := ValidateRecipeYAML("source:\n  config: {}\n", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type", "the failing keyword should be visible in the output")
}
