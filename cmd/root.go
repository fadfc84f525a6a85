package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	cfg "github.com/anaghshineh/datahub/pkg/config"
	log "github.com/anaghshineh/datahub/pkg/logger"
	"github.com/anaghshineh/datahub/pkg/perf"
	"github.com/anaghshineh/datahub/pkg/schema"
	u "github.com/anaghshineh/datahub/pkg/utils"
)

// appConfig is the CLI configuration resolved by PersistentPreRunE and shared
// by all subcommands.
var appConfig schema.AppConfiguration

// cliConfigPath holds the --config flag value.
var cliConfigPath string

// logFile is the file opened by setupLogger when logs are routed to a real
// file. Cleanup closes it before the process exits.
var logFile *os.File

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:                "datahub",
	Short:              "DataHub metadata ingestion CLI",
	Long:               `datahub loads ingestion recipes, validates source configurations and materializes GCP credentials for the BigQuery usage source`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	FParseErrWhitelist: struct{ UnknownFlags bool }{UnknownFlags: false},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// LoadConfig finds and merges CLI configurations in the following order:
		// system dir, home dir, current dir, ENV vars, command-line arguments.
		var err error
		appConfig, err = cfg.LoadConfig(cliConfigPath)
		if err != nil {
			return err
		}

		applyFlagOverrides(cmd)

		// Reject unknown levels here so setupLogger never has to.
		if _, err := log.ParseLogLevel(appConfig.Logs.Level); err != nil {
			return err
		}

		if appConfig.Perf.Enabled {
			perf.EnableTracking(true)
		}

		setupLogger(&appConfig)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if perf.TrackingEnabled() {
			printPerfSummary()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

// Cleanup releases process-wide resources before exit.
func Cleanup() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// applyFlagOverrides lets --logs-level and --logs-file take precedence over
// the values loaded from `datahub.yaml`.
func applyFlagOverrides(cmd *cobra.Command) {
	if cmd.Flags().Changed("logs-level") {
		if v, err := cmd.Flags().GetString("logs-level"); err == nil {
			appConfig.Logs.Level = v
		}
	}
	if cmd.Flags().Changed("logs-file") {
		if v, err := cmd.Flags().GetString("logs-file"); err == nil {
			appConfig.Logs.File = v
		}
	}
}

// setupLogger configures the default logger from the Logs section of the CLI
// configuration. An empty Logs.File keeps the current output untouched.
func setupLogger(appConfig *schema.AppConfiguration) {
	logLevel, err := log.ParseLogLevel(appConfig.Logs.Level)
	if err != nil {
		logLevel = log.LogLevelInfo
	}
	log.Default().SetLogLevel(logLevel)

	switch appConfig.Logs.File {
	case "":
	case "/dev/stderr":
		log.SetOutput(os.Stderr)
	case "/dev/stdout":
		log.SetOutput(os.Stdout)
	case "/dev/null":
		log.SetOutput(io.Discard)
	default:
		if err := u.EnsureDir(appConfig.Logs.File); err != nil {
			log.Error("Failed to create log file directory, using stderr", "file", appConfig.Logs.File, "error", err)
			log.SetOutput(os.Stderr)
			return
		}
		f, err := os.OpenFile(appConfig.Logs.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Error("Failed to open log file, using stderr", "file", appConfig.Logs.File, "error", err)
			log.SetOutput(os.Stderr)
			return
		}
		logFile = f
		log.SetOutput(f)
	}
}

// printPerfSummary logs one line per tracked function, slowest first.
func printPerfSummary() {
	for _, s := range perf.Snapshot() {
		log.Info("perf", "func", s.Name, "count", s.Count, "total", s.Total, "avg", s.Avg, "max", s.Max)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cliConfigPath, "config", "", "Path to the datahub.yaml CLI configuration file")
	RootCmd.PersistentFlags().String("logs-level", "Info", "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off. If the log level is set to Off, no messages are logged")
	RootCmd.PersistentFlags().String("logs-file", "/dev/stderr", "The file to write logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
}
