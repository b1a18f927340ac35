// Package cli orchestrates the command-line workflows around the
// formatter.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/espalier/internal/logging"
)

// createLogger configures the application logger.
// Verbose mode writes debug lines to Stderr so they stay apart from
// notebook output on Stdout.
func createLogger(verbose bool) *slog.Logger {
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}
