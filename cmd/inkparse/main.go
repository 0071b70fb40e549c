// Command inkparse parses and follows Inkbound game logs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkbound-tools/inkbound-go/internal/logfinder"
)

var (
	// global flags
	verbose bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "inkparse",
	Short: "Inkbound log parser",
	Long: `inkparse reads the log file written by Inkbound and reports
per-player combat statistics.

The log file is located automatically. Use --log-file or the
INKBOUND_LOG environment variable to point at a different file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "",
		"Inkbound log file (auto-detected if not specified)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns the logger passed to the library, or nil to keep it quiet.
func newLogger() *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// resolveLogFile picks the log file from a positional argument, the
// --log-file flag, or auto-detection, in that order.
func resolveLogFile(args []string) (string, error) {
	explicit := logFile
	if len(args) > 0 {
		explicit = args[0]
	}
	path, err := logfinder.FindLogFile(explicit)
	if err != nil {
		return "", fmt.Errorf("locating log file: %w", err)
	}
	return path, nil
}
