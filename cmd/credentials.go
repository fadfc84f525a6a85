package cmd

import (
	"github.com/spf13/cobra"
)

// credentialsCmd commands work with source credentials.
var credentialsCmd = &cobra.Command{
	Use:                "credentials",
	Short:              "Execute 'credentials' commands",
	Long:               `This command manages source credentials declared in ingestion recipes`,
	FParseErrWhitelist: struct{ UnknownFlags bool }{UnknownFlags: false},
}

func init() {
	RootCmd.AddCommand(credentialsCmd)
}
