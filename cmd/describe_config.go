package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	errUtils "github.com/anaghshineh/datahub/errors"
	"github.com/anaghshineh/datahub/pkg/perf"
	u "github.com/anaghshineh/datahub/pkg/utils"
)

// describeConfigCmd shows the final (deep-merged) CLI configuration.
var describeConfigCmd = &cobra.Command{
	Use:                "config",
	Short:              "Execute 'describe config' command",
	Long:               `This command shows the final (deep-merged) CLI configuration: datahub describe config`,
	FParseErrWhitelist: struct{ UnknownFlags bool }{UnknownFlags: false},
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeDescribeConfigCmd(cmd, args)
	},
}

func executeDescribeConfigCmd(cmd *cobra.Command, _ []string) error {
	defer perf.Track(nil, "cmd.executeDescribeConfigCmd")()

	flags := cmd.Flags()

	format, err := flags.GetString("format")
	if err != nil {
		return err
	}
	file, err := flags.GetString("file")
	if err != nil {
		return err
	}

	return printOrWriteToFile(format, file, appConfig)
}

// printOrWriteToFile prints the data to the console, or writes it to a file
// when one is named, in the requested format.
func printOrWriteToFile(format string, file string, data any) error {
	switch format {
	case "json":
		if file == "" {
			return u.PrintAsJSON(data)
		}
		return u.WriteToFileAsJSON(file, data, 0o644)
	case "yaml":
		if file == "" {
			return u.PrintAsYAML(data)
		}
		return u.WriteToFileAsYAML(file, data, 0o644)
	default:
		return fmt.Errorf("%w: unsupported format '%s' (supported: json, yaml)", errUtils.ErrInvalidFormat, format)
	}
}

func init() {
	describeConfigCmd.PersistentFlags().StringP("format", "f", "json", "The output format: datahub describe config -f json|yaml")
	describeConfigCmd.PersistentFlags().String("file", "", "Write the result to the file: datahub describe config --file config.json")

	describeCmd.AddCommand(describeConfigCmd)
}
