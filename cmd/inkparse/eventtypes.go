package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

// ValidEventTypes maps the names accepted by --types to event types.
var ValidEventTypes = func() map[string]event.Type {
	m := make(map[string]event.Type)
	for _, name := range event.TypeNames() {
		t, _ := event.ParseType(name)
		m[name] = t
	}
	return m
}()

// ValidEventTypeNames returns the valid --types values, sorted.
func ValidEventTypeNames() []string {
	names := make([]string, 0, len(ValidEventTypes))
	for name := range ValidEventTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildTypeFilter turns --types values into a set. An empty result means
// every type passes.
func buildTypeFilter(names []string) (map[event.Type]bool, error) {
	filter := make(map[event.Type]bool, len(names))
	for _, name := range names {
		t, ok := event.ParseType(name)
		if !ok {
			return nil, fmt.Errorf("unknown event type %q (valid: %v)", name, ValidEventTypeNames())
		}
		filter[t] = true
	}
	return filter, nil
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List event types accepted by --types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range ValidEventTypeNames() {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
