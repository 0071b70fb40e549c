package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound"
	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

var (
	// tail flags
	tailFormat string
	eventTypes []string
	includeRaw bool
	fromStart  bool
)

var tailCmd = &cobra.Command{
	Use:   "tail [log-file]",
	Short: "Follow the log and print events as they happen",
	Long: `Follow an Inkbound log file and print parsed events as the game
writes them.

Events are output as JSON Lines by default (one JSON object per line),
which makes it easy to process with tools like jq.

Examples:
  # Follow the auto-detected log
  inkparse tail

  # Only show damage dealt by players
  inkparse tail --types damage_dealt

  # Human-readable output, replaying the existing content first
  inkparse tail --format pretty --from-start

  # Pipe to jq for filtering
  inkparse tail | jq 'select(.type == "orb_pickup")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTail,
}

func init() {
	tailCmd.Flags().StringVarP(&tailFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	tailCmd.Flags().StringSliceVarP(&eventTypes, "types", "t", nil,
		"Event types to show (comma-separated, see 'inkparse types')")
	tailCmd.Flags().BoolVar(&includeRaw, "raw", false,
		"Include raw log lines in output")
	tailCmd.Flags().BoolVar(&fromStart, "from-start", false,
		"Print events already in the log before following")

	_ = tailCmd.RegisterFlagCompletionFunc("types", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ValidEventTypeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(tailCmd)
}

func runTail(cmd *cobra.Command, args []string) error {
	if !ValidFormats[tailFormat] {
		return fmt.Errorf("unknown format: %s", tailFormat)
	}
	typeFilter, err := buildTypeFilter(eventTypes)
	if err != nil {
		return err
	}

	path, err := resolveLogFile(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	follower, err := inkbound.NewFollower(path,
		inkbound.WithSkipCurrent(!fromStart),
		inkbound.WithIncludeRawLine(includeRaw),
		inkbound.WithLogger(newLogger()),
	)
	if err != nil {
		return err
	}
	defer follower.Close()

	events, errs, err := follower.Follow(ctx)
	if err != nil {
		return err
	}
	return printEvents(ctx, events, errs, typeFilter, cmd.OutOrStdout())
}

// printEvents writes events until both channels close or ctx is done.
func printEvents(ctx context.Context, events <-chan event.Event, errs <-chan error, filter map[event.Type]bool, out io.Writer) error {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if len(filter) > 0 && !filter[ev.Type] {
				continue
			}
			if err := OutputEvent(tailFormat, ev, out); err != nil {
				return fmt.Errorf("output error: %w", err)
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)

		case <-ctx.Done():
			return nil
		}
	}
}
