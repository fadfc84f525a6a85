package cmd

import (
	"github.com/spf13/cobra"
)

// describeCmd commands show effective CLI configuration.
var describeCmd = &cobra.Command{
	Use:                "describe",
	Short:              "Execute 'describe' commands",
	Long:               `This command shows the effective CLI configuration`,
	FParseErrWhitelist: struct{ UnknownFlags bool }{UnknownFlags: false},
}

func init() {
	RootCmd.AddCommand(describeCmd)
}
