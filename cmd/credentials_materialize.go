package cmd

import (
	"github.com/spf13/cobra"

	errUtils "github.com/anaghshineh/datahub/errors"
	cfg "github.com/anaghshineh/datahub/pkg/config"
	"github.com/anaghshineh/datahub/pkg/perf"
	u "github.com/anaghshineh/datahub/pkg/utils"
)

// credentialsMaterializeCmd writes the recipe's GCP credential to a temp file.
var credentialsMaterializeCmd = &cobra.Command{
	Use:                "materialize",
	Short:              "Execute 'credentials materialize' command",
	Long:               `This command writes the GCP service account key from an ingestion recipe to a temporary credential file and prints the file path: datahub credentials materialize --file recipe.yaml`,
	Example:            "datahub credentials materialize --file recipe.yaml",
	FParseErrWhitelist: struct{ UnknownFlags bool }{UnknownFlags: false},
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeCredentialsMaterializeCmd(cmd, args)
	},
}

func executeCredentialsMaterializeCmd(cmd *cobra.Command, _ []string) error {
	defer perf.Track(nil, "cmd.executeCredentialsMaterializeCmd")()

	recipePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	usageConfig, err := cfg.LoadBigQueryUsageRecipe(recipePath)
	if err != nil {
		return err
	}

	credentialsPath := usageConfig.CredentialsPath()
	if credentialsPath == "" {
		return errUtils.Build(errUtils.ErrNilCredential).
			WithHint("Add a `credential` block to the recipe's source config").
			Err()
	}

	// The file holds secret material; print only its location.
	u.PrintMessage(credentialsPath)
	return nil
}

func init() {
	credentialsMaterializeCmd.PersistentFlags().StringP("file", "f", "", "Path to the ingestion recipe file: datahub credentials materialize --file recipe.yaml")

	err := credentialsMaterializeCmd.MarkPersistentFlagRequired("file")
	errUtils.CheckErrorPrintAndExit(err)

	credentialsCmd.AddCommand(credentialsMaterializeCmd)
}
