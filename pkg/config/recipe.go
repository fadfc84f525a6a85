package config

import (
	"fmt"

	"github.com/spf13/viper"

	errUtils "github.com/anaghshineh/datahub/errors"
	"github.com/anaghshineh/datahub/pkg/bigquery"
	"github.com/anaghshineh/datahub/pkg/gcs"
	log "github.com/anaghshineh/datahub/pkg/logger"
	"github.com/anaghshineh/datahub/pkg/perf"
	"github.com/anaghshineh/datahub/pkg/utils"
)

// SourceTypeBigQueryUsage identifies the BigQuery usage statistics source in
// a recipe's source.type field.
const SourceTypeBigQueryUsage = "bigquery-usage"

const errWrapFormat = "%w: %w"

// Recipe is an ingestion recipe: a typed source header plus the free-form
// source-specific configuration under it.
type Recipe struct {
	Source RecipeSource `yaml:"source" json:"source" mapstructure:"source"`
}

// RecipeSource names the source implementation and carries its raw config.
type RecipeSource struct {
	Type   string         `yaml:"type" json:"type" mapstructure:"type"`
	Config map[string]any `yaml:"config,omitempty" json:"config,omitempty" mapstructure:"config"`
}

// LoadRecipe reads an ingestion recipe from a YAML file. The source config
// stays raw; pass the recipe to BigQueryUsageConfig to validate it.
func LoadRecipe(path string) (*Recipe, error) {
	defer perf.Track(nil, "config.LoadRecipe")()

	// Recipes are read from local files only. Catch object store URIs before
	// the file check turns them into a misleading not-found error.
	if gcs.IsGCSURI(path) {
		return nil, errUtils.Build(fmt.Errorf("%w: remote recipe %q", errUtils.ErrInvalidRecipe, path)).
			WithHint("Download the recipe from GCS and pass the local path").
			Err()
	}

	if ok, err := utils.IsDirectory(path); err == nil && ok {
		return nil, errUtils.Build(fmt.Errorf("%w: %s is a directory", errUtils.ErrInvalidRecipe, path)).
			WithHint("Pass the recipe file itself, not its directory").
			Err()
	}

	if !utils.FileExists(path) {
		return nil, errUtils.Build(fmt.Errorf("%w: file not found: %s", errUtils.ErrInvalidRecipe, path)).
			WithHint("Pass the recipe file path with `--file`").
			Err()
	}

	if !utils.IsYaml(path) {
		log.Debug("Recipe file does not have a YAML extension", "file", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf(errWrapFormat, errUtils.ErrInvalidRecipe, err)
	}

	var recipe Recipe
	if err := v.Unmarshal(&recipe); err != nil {
		return nil, fmt.Errorf(errWrapFormat, errUtils.ErrInvalidRecipe, err)
	}
	if recipe.Source.Type == "" {
		return nil, fmt.Errorf("%w: source.type is required", errUtils.ErrInvalidRecipe)
	}
	return &recipe, nil
}

// BigQueryUsageConfig builds the validated BigQuery usage source config from
// the recipe, rejecting recipes that name a different source type.
func (r *Recipe) BigQueryUsageConfig() (*bigquery.UsageConfig, error) {
	defer perf.Track(nil, "config.Recipe.BigQueryUsageConfig")()

	if r.Source.Type != SourceTypeBigQueryUsage {
		err := fmt.Errorf("%w: %q", errUtils.ErrUnsupportedSourceType, r.Source.Type)
		return nil, errUtils.Build(err).
			WithHintf("This build supports only `source.type: %s`", SourceTypeBigQueryUsage).
			Err()
	}
	return bigquery.NewUsageConfig(r.Source.Config)
}

// LoadBigQueryUsageRecipe is the one-call path from a recipe file to a
// validated usage config.
func LoadBigQueryUsageRecipe(path string) (*bigquery.UsageConfig, error) {
	recipe, err := LoadRecipe(path)
	if err != nil {
		return nil, err
	}
	return recipe.BigQueryUsageConfig()
}
