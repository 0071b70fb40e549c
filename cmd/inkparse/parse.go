package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [log-file]",
	Short: "Parse a whole log file and print the results",
	Long: `Parse an Inkbound log file once and print every dive with its
combats and per-player statistics.

Examples:
  # Parse the auto-detected log as JSON
  inkparse parse

  # Parse a saved copy as YAML
  inkparse parse ./logfile.log --format yaml

  # Print a table of dive totals
  inkparse parse --format summary`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json",
		"Output format: json, yaml, summary")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if !ValidParseFormats[parseFormat] {
		return fmt.Errorf("unknown format: %s", parseFormat)
	}

	path, err := resolveLogFile(args)
	if err != nil {
		return err
	}

	dl, err := inkbound.ParseFile(path, inkbound.WithParserLogger(newLogger()))
	if err != nil {
		return err
	}
	return OutputDataLog(parseFormat, dl, cmd.OutOrStdout())
}
