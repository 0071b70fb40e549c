package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

func TestValidEventTypes(t *testing.T) {
	expected := map[string]event.Type{
		"dive_start":      event.DiveStart,
		"dive_end":        event.DiveEnd,
		"combat_start":    event.CombatStart,
		"combat_end":      event.CombatEnd,
		"next_turn":       event.NextTurn,
		"set_pov":         event.SetPOV,
		"damage_dealt":    event.DamageDealt,
		"damage_received": event.DamageReceived,
		"damage_other":    event.DamageOther,
		"orb_pickup":      event.OrbPickup,
		"status_effect":   event.StatusEffectAdded,
	}

	for name, want := range expected {
		got, ok := ValidEventTypes[name]
		if !ok {
			t.Errorf("ValidEventTypes missing %q", name)
			continue
		}
		if got != want {
			t.Errorf("ValidEventTypes[%q] = %v, want %v", name, got, want)
		}
	}

	if len(ValidEventTypes) != len(expected) {
		t.Errorf("ValidEventTypes has %d entries, want %d", len(ValidEventTypes), len(expected))
	}
}

func TestValidEventTypeNames(t *testing.T) {
	names := ValidEventTypeNames()

	if len(names) != len(ValidEventTypes) {
		t.Errorf("ValidEventTypeNames() returned %d names, want %d", len(names), len(ValidEventTypes))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("ValidEventTypeNames() not sorted: %q > %q", names[i-1], names[i])
		}
	}
}

func TestBuildTypeFilter(t *testing.T) {
	filter, err := buildTypeFilter([]string{"damage_dealt", " ORB_PICKUP"})
	if err != nil {
		t.Fatalf("buildTypeFilter() error = %v", err)
	}
	if !filter[event.DamageDealt] || !filter[event.OrbPickup] || len(filter) != 2 {
		t.Errorf("buildTypeFilter() = %v", filter)
	}

	filter, err = buildTypeFilter(nil)
	if err != nil || len(filter) != 0 {
		t.Errorf("buildTypeFilter(nil) = %v, %v; want empty filter", filter, err)
	}

	if _, err := buildTypeFilter([]string{"player_join"}); err == nil {
		t.Error("buildTypeFilter(player_join) expected error")
	}
}

func TestTypesCommand(t *testing.T) {
	var buf bytes.Buffer
	typesCmd.SetOut(&buf)
	defer typesCmd.SetOut(nil)

	if err := typesCmd.RunE(typesCmd, nil); err != nil {
		t.Fatalf("types error = %v", err)
	}
	got := strings.Fields(buf.String())
	if len(got) != len(ValidEventTypes) {
		t.Errorf("types printed %d names, want %d", len(got), len(ValidEventTypes))
	}
}
