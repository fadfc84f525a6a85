package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/anaghshineh/datahub/pkg/perf"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	newline = "\n"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose enables detailed error chain output.
	Verbose bool

	// MaxLineLength is the maximum length before wrapping (default: 80).
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	defer perf.Track(nil, "errors.DefaultFormatterConfig")()

	return FormatterConfig{
		Verbose:       false,
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format formats an error for display. Hints attached via the builder are
// printed as an indented list under the message. Verbose mode appends the
// safe context details and the full error chain.
func Format(err error, config FormatterConfig) string {
	defer perf.Track(nil, "errors.Format")()

	if err == nil {
		return ""
	}

	var output strings.Builder

	mainMsg := err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		output.WriteString(wrapText(mainMsg, config.MaxLineLength))
	} else {
		output.WriteString(mainMsg)
	}

	hints := errors.GetAllHints(err)
	if len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString("    hint: " + hint)
			output.WriteString(newline)
		}
	}

	if config.Verbose {
		if details := formatSafeDetails(err); details != "" {
			output.WriteString(details)
			output.WriteString(newline)
		}
		output.WriteString(newline)
		output.WriteString(fmt.Sprintf("%+v", err))
	}

	return output.String()
}

// formatSafeDetails renders the structured context attached via WithContext
// as "key: value" lines. Details can sit anywhere in the chain, so the whole
// chain is walked.
func formatSafeDetails(err error) string {
	var lines []string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			str := fmt.Sprintf("%v", detail)
			for _, pair := range strings.Split(str, " ") {
				if parts := strings.SplitN(pair, "=", 2); len(parts) == 2 {
					lines = append(lines, "    "+parts[0]+": "+parts[1])
				}
			}
		}
	}

	if len(lines) == 0 {
		return ""
	}
	return newline + strings.Join(lines, newline)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}

	var lines []string
	var currentLine strings.Builder

	words := strings.Fields(text)
	for i, word := range words {
		testLine := currentLine.String()
		if len(testLine) > 0 {
			testLine += " " + word
		} else {
			testLine = word
		}

		if len(testLine) > width && currentLine.Len() > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		} else {
			if i > 0 && currentLine.Len() > 0 {
				currentLine.WriteString(" ")
			}
			currentLine.WriteString(word)
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, newline)
}
