package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound"
	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

// ValidFormats lists the output formats of the tail command.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// ValidParseFormats lists the output formats of the parse command.
var ValidParseFormats = map[string]bool{
	"json":    true,
	"yaml":    true,
	"summary": true,
}

// OutputEvent writes an event in the specified format to the writer.
func OutputEvent(format string, ev event.Event, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(ev, out)
	case "pretty":
		return OutputPretty(ev, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes an event as JSON Lines format.
func OutputJSON(ev event.Event, out io.Writer) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes an event in human-readable format.
func OutputPretty(ev event.Event, out io.Writer) error {
	var err error
	switch ev.Type {
	case event.DiveStart:
		_, err = fmt.Fprintln(out, "=== dive started")
	case event.DiveEnd:
		_, err = fmt.Fprintln(out, "=== dive ended")
	case event.CombatStart:
		_, err = fmt.Fprintln(out, "--- combat started")
	case event.CombatEnd:
		_, err = fmt.Fprintln(out, "--- combat ended")
	case event.NextTurn:
		_, err = fmt.Fprintln(out, "    next turn")
	case event.SetPOV:
		_, err = fmt.Fprintf(out, "@ playing as %s\n", ev.Name)
	case event.DamageDealt, event.DamageReceived, event.DamageOther:
		_, err = fmt.Fprintf(out, "%s %s\n", damageMarker(ev.Type), formatDamage(ev.Damage))
	case event.OrbPickup:
		_, err = fmt.Fprintf(out, "o %s picked up an orb\n", ev.Player.Name)
	case event.StatusEffectAdded:
		st := ev.Status
		_, err = fmt.Fprintf(out, "~ %s applied %d %s to %s (%d)\n",
			st.Source, st.Added, st.Effect, st.Target, st.NewValue)
	default:
		_, err = fmt.Fprintf(out, "? %s\n", ev.Type)
	}
	return err
}

func damageMarker(t event.Type) string {
	switch t {
	case event.DamageDealt:
		return ">"
	case event.DamageReceived:
		return "<"
	default:
		return "*"
	}
}

func formatDamage(d *event.Damage) string {
	s := fmt.Sprintf("%s -> %s %d (%s)", d.Source, d.Target, d.Amount, d.Ability)
	switch {
	case d.Dodged:
		s += " dodged"
	case d.Crit:
		s += " crit"
	}
	return s
}

// OutputDataLog writes a parsed history in the specified parse format.
func OutputDataLog(format string, dl *inkbound.DataLog, out io.Writer) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dl)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(dl); err != nil {
			return err
		}
		return enc.Close()
	case "summary":
		return OutputSummary(dl, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputSummary writes a table of dive totals per player, newest dive first.
func OutputSummary(dl *inkbound.DataLog, out io.Writer) error {
	if len(dl.Dives) == 0 {
		_, err := fmt.Fprintln(out, "no dives")
		return err
	}
	for i, dive := range dl.Dives {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(out, "dive %s (%d combats)\n", dive.ID, len(dive.Combats)); err != nil {
			return err
		}
		if err := WriteStatsTable(dive.Stats, out); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatsTable writes one row per player, sorted by name.
func WriteStatsTable(stats inkbound.PlayerStatList, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "PLAYER\tASPECT\tDEALT\tCRIT\tRECEIVED\tORBS\tPER ORB"); err != nil {
		return err
	}
	for _, name := range stats.Names() {
		s := stats[name]
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%.1f\n",
			name, s.Player.Aspect, s.TotalDamageDealt, s.CritDamage(),
			s.TotalDamageReceived, s.OrbPickups, s.DamagePerOrb()); err != nil {
			return err
		}
	}
	return tw.Flush()
}
