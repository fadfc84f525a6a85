package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/anaghshineh/datahub/pkg/logger"

	"github.com/anaghshineh/datahub/cmd"
	errUtils "github.com/anaghshineh/datahub/errors"
)

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Clean up resources before exit.
		cmd.Cleanup()
		// Exit with correct POSIX exit code (128 + signal number).
		// Use errUtils.OsExit to allow test interception.
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		// Fallback to SIGINT exit code if signal type assertion fails.
		errUtils.OsExit(130)
	}()

	// Disable timestamps in logs so output stays stable across runs.
	log.Default().SetReportTimestamp(false)

	// Run the application and exit with the appropriate code.
	errUtils.OsExit(run())
}

// run executes the root command and returns an exit code. The separation
// lets deferred cleanup run before os.Exit in main().
func run() int {
	defer cmd.Cleanup()

	err := cmd.Execute()
	if err != nil {
		// Format and print the error using the centralized formatter.
		formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")

		// Extract and use the correct exit code.
		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return 0
}
