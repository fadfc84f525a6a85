// Package validate checks ingestion recipes against the recipe JSON schema
// before any source config is constructed from them.
package validate

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	errUtils "github.com/anaghshineh/datahub/errors"
	"github.com/anaghshineh/datahub/pkg/perf"
	"github.com/anaghshineh/datahub/pkg/utils"
)

//go:embed schema/recipe_schema.json
var embeddedRecipeSchema string

const (
	embeddedSchemaName = "recipe_schema.json"
	errWrapFormat      = "%w: %w"
)

// ValidateRecipeFile validates a recipe YAML file against the recipe JSON
// schema. A non-empty schemaPath overrides the embedded schema.
func ValidateRecipeFile(recipePath string, schemaPath string) error {
	defer perf.Track(nil, "validate.ValidateRecipeFile")()

	if !utils.FileExists(recipePath) {
		return fmt.Errorf("%w: file not found: %s", errUtils.ErrInvalidRecipe, recipePath)
	}
	content, err := os.ReadFile(recipePath)
	if err != nil {
		return fmt.Errorf(errWrapFormat, errUtils.ErrInvalidRecipe, err)
	}
	return ValidateRecipeYAML(string(content), schemaPath)
}

// ValidateRecipeYAML validates recipe YAML content against the recipe JSON
// schema. The content is round-tripped through JSON first so the values take
// the shapes the schema library expects.
func ValidateRecipeYAML(content string, schemaPath string) error {
	defer perf.Track(nil, "validate.ValidateRecipeYAML")()

	data, err := utils.UnmarshalYAML[any](content)
	if err != nil {
		return fmt.Errorf(errWrapFormat, errUtils.ErrInvalidRecipe, err)
	}

	dataJSON, err := utils.ConvertToJSON(data)
	if err != nil {
		return err
	}
	dataFromJSON, err := utils.ConvertFromJSON(dataJSON)
	if err != nil {
		return err
	}

	compiledSchema, err := compileSchema(schemaPath)
	if err != nil {
		return err
	}

	if err := compiledSchema.Validate(dataFromJSON); err != nil {
		switch e := err.(type) {
		case *jsonschema.ValidationError:
			details, err2 := utils.ConvertToJSON(e.BasicOutput())
			if err2 != nil {
				return err2
			}
			return fmt.Errorf("%w:\n%s", errUtils.ErrRecipeSchemaValidation, details)
		default:
			return fmt.Errorf(errWrapFormat, errUtils.ErrRecipeSchemaValidation, err)
		}
	}
	return nil
}

// compileSchema compiles either the embedded recipe schema or the one at
// schemaPath.
func compileSchema(schemaPath string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	name := embeddedSchemaName
	var reader io.Reader = strings.NewReader(embeddedRecipeSchema)

	if schemaPath != "" {
		f, err := os.Open(schemaPath)
		if err != nil {
			return nil, fmt.Errorf(errWrapFormat, errUtils.ErrRecipeSchemaValidation, err)
		}
		defer f.Close()
		name = schemaPath
		reader = f
	}

	if err := compiler.AddResource(name, reader); err != nil {
		return nil, fmt.Errorf(errWrapFormat, errUtils.ErrRecipeSchemaValidation, err)
	}
	compiledSchema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf(errWrapFormat, errUtils.ErrRecipeSchemaValidation, err)
	}
	return compiledSchema, nil
}
