package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound"
)

var (
	// watch flags
	refreshInterval time.Duration
	pollInterval    time.Duration
	skipCurrent     bool
	combatOnly      bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [log-file]",
	Short: "Show a live damage table for the current dive",
	Long: `Keep the log parsed while the game writes it and periodically
print a table of the current dive's (or combat's) per-player totals.

If the game truncates its log, the reader is reset and starts over.

Examples:
  # Refresh every 5 seconds
  inkparse watch --refresh 5s

  # Only the current combat
  inkparse watch --combat`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&refreshInterval, "refresh", 2*time.Second,
		"How often to print the table")
	watchCmd.Flags().DurationVar(&pollInterval, "poll", inkbound.DefaultPollInterval,
		"How often to check the log for changes")
	watchCmd.Flags().BoolVar(&skipCurrent, "skip-current", false,
		"Ignore what is already in the log")
	watchCmd.Flags().BoolVar(&combatOnly, "combat", false,
		"Show the current combat instead of the whole dive")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if refreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", refreshInterval)
	}

	path, err := resolveLogFile(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r, err := inkbound.NewLogReader(path,
		inkbound.WithPollInterval(pollInterval),
		inkbound.WithSkipCurrent(skipCurrent),
		inkbound.WithLogger(newLogger()),
	)
	if err != nil {
		return err
	}
	defer r.Close()

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	out := cmd.OutOrStdout()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if r.Status() == inkbound.StatusErrored {
			fmt.Fprintf(os.Stderr, "warning: %v; resetting\n", r.LastError())
			if err := r.Reset(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: reset failed: %v\n", err)
			}
			continue
		}

		if err := renderWatch(r.Status(), r.DataLog(), combatOnly, out); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
}

// renderWatch prints the status line and the current stats table.
func renderWatch(status inkbound.Status, data *inkbound.SharedDataLog, combat bool, out io.Writer) error {
	var (
		stats inkbound.PlayerStatList
		pov   string
		scope = "no dive yet"
	)
	data.View(func(dl *inkbound.DataLog) {
		pov = dl.POV
		dive := dl.CurrentDive()
		if dive == nil {
			return
		}
		scope = fmt.Sprintf("dive %s", dive.ID)
		stats = dive.Stats
		if combat {
			c := dive.CurrentCombat()
			if c == nil {
				scope += ", no combat yet"
				stats = nil
				return
			}
			scope += fmt.Sprintf(", combat %d", len(dive.Combats))
			stats = c.Stats
		}
		stats = stats.Clone()
	})

	header := fmt.Sprintf("[%s] %s", status, scope)
	if pov != "" {
		header += " as " + pov
	}
	if _, err := fmt.Fprintln(out, header); err != nil {
		return err
	}
	if len(stats) == 0 {
		return nil
	}
	return WriteStatsTable(stats, out)
}
