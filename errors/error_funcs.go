package errors

import (
	"os"

	log "github.com/anaghshineh/datahub/pkg/logger"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// CheckErrorAndPrint prints a formatted error message to stderr.
func CheckErrorAndPrint(err error) {
	if err == nil {
		return
	}
	formatted := Format(err, DefaultFormatterConfig())
	if _, printErr := os.Stderr.WriteString(formatted + "\n"); printErr != nil {
		log.Error(printErr)
		log.Error(err)
	}
}

// CheckErrorPrintAndExit prints an error message and exits with the error's
// exit code.
func CheckErrorPrintAndExit(err error) {
	if err == nil {
		return
	}

	CheckErrorAndPrint(err)

	// revive:disable-next-line:deep-exit
	Exit(GetExitCode(err))
}

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
