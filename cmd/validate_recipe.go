package cmd

import (
	"github.com/spf13/cobra"

	errUtils "github.com/anaghshineh/datahub/errors"
	cfg "github.com/anaghshineh/datahub/pkg/config"
	log "github.com/anaghshineh/datahub/pkg/logger"
	"github.com/anaghshineh/datahub/pkg/perf"
	"github.com/anaghshineh/datahub/pkg/validate"
)

// validateRecipeCmd validates an ingestion recipe file.
var validateRecipeCmd = &cobra.Command{
	Use:                "recipe",
	Short:              "Execute 'validate recipe' command",
	Long:               `This command validates an ingestion recipe file against the recipe schema and the source configuration rules: datahub validate recipe --file recipe.yaml`,
	Example:            "datahub validate recipe --file recipe.yaml",
	FParseErrWhitelist: struct{ UnknownFlags bool }{UnknownFlags: false},
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeValidateRecipeCmd(cmd, args)
	},
}

func executeValidateRecipeCmd(cmd *cobra.Command, _ []string) error {
	defer perf.Track(nil, "cmd.executeValidateRecipeCmd")()

	flags := cmd.Flags()

	recipePath, err := flags.GetString("file")
	if err != nil {
		return err
	}
	skipSchema, err := flags.GetBool("skip-schema")
	if err != nil {
		return err
	}
	schemaPath, err := flags.GetString("schema")
	if err != nil {
		return err
	}
	if schemaPath == "" {
		schemaPath = appConfig.Validate.SchemaPath
	}

	if !skipSchema {
		if err := validate.ValidateRecipeFile(recipePath, schemaPath); err != nil {
			return err
		}
	}

	recipe, err := cfg.LoadRecipe(recipePath)
	if err != nil {
		return err
	}

	// Constructing the source config runs every validation rule, including
	// the ones schema validation cannot express.
	if _, err := recipe.BigQueryUsageConfig(); err != nil {
		return err
	}

	log.Info("Recipe is valid", "file", recipePath, "source", recipe.Source.Type)
	return nil
}

func init() {
	validateRecipeCmd.PersistentFlags().StringP("file", "f", "", "Path to the ingestion recipe file: datahub validate recipe --file recipe.yaml")
	validateRecipeCmd.PersistentFlags().String("schema", "", "Path to a JSON schema file overriding the embedded recipe schema")
	validateRecipeCmd.PersistentFlags().Bool("skip-schema", false, "Skip JSON schema validation and only run the source configuration rules")

	err := validateRecipeCmd.MarkPersistentFlagRequired("file")
	errUtils.CheckErrorPrintAndExit(err)

	validateCmd.AddCommand(validateRecipeCmd)
}
