package cmd

import (
	"github.com/spf13/cobra"
)

// validateCmd commands validate ingestion recipes.
var validateCmd = &cobra.Command{
	Use:                "validate",
	Short:              "Execute 'validate' commands",
	Long:               `This command validates ingestion recipes`,
	FParseErrWhitelist: struct{ UnknownFlags bool }{UnknownFlags: false},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
