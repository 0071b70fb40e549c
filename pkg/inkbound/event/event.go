// Package event defines the events produced by the Inkbound log parser.
//
// This package is separated from the main inkbound package to avoid import
// cycles between pkg/inkbound and internal/parser.
package event

import (
	"sort"
	"strings"
)

// Type represents the type of an Inkbound log event.
type Type string

const (
	// DiveStart marks the beginning of a run ("Party run start triggered").
	DiveStart Type = "dive_start"

	// DiveEnd marks the end of a run.
	DiveEnd Type = "dive_end"

	// CombatStart marks the beginning of an encounter.
	CombatStart Type = "combat_start"

	// CombatEnd marks the start of an encounter's end sequence.
	CombatEnd Type = "combat_end"

	// NextTurn is written once per player per turn.
	NextTurn Type = "next_turn"

	// SetPOV names the character that owns the log.
	SetPOV Type = "set_pov"

	// DamageDealt is damage from a player to an unresolved handle.
	DamageDealt Type = "damage_dealt"

	// DamageReceived is damage from an unresolved handle to a player.
	DamageReceived Type = "damage_received"

	// DamageOther is player-vs-player or enemy-vs-enemy damage.
	DamageOther Type = "damage_other"

	// OrbPickup is a mana orb collected by a player.
	OrbPickup Type = "orb_pickup"

	// StatusEffectAdded is a status effect gaining stacks on a unit.
	StatusEffectAdded Type = "status_effect"
)

// allTypes is the canonical list of all event types.
var allTypes = []Type{
	DiveStart, DiveEnd, CombatStart, CombatEnd, NextTurn, SetPOV,
	DamageDealt, DamageReceived, DamageOther, OrbPickup, StatusEffectAdded,
}

// TypeNames returns a sorted list of all valid event type names.
func TypeNames() []string {
	names := make([]string, len(allTypes))
	for i, t := range allTypes {
		names[i] = string(t)
	}
	sort.Strings(names)
	return names
}

var typeByName = func() map[string]Type {
	m := make(map[string]Type, len(allTypes))
	for _, t := range allTypes {
		m[string(t)] = t
	}
	return m
}()

// ParseType converts a string to Type if valid.
// It is case-insensitive and trims leading/trailing whitespace.
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	t, ok := typeByName[name]
	return t, ok
}

// Event is a parsed Inkbound log event.
// Which payload field is set depends on Type.
type Event struct {
	// Type is the event type.
	Type Type `json:"type" yaml:"type"`

	// Damage is set for DamageDealt, DamageReceived and DamageOther.
	// For DamageDealt the source is always resolved; for DamageReceived the
	// target is.
	Damage *Damage `json:"damage,omitempty" yaml:"damage,omitempty"`

	// Status is set for StatusEffectAdded.
	Status *StatusEffect `json:"status,omitempty" yaml:"status,omitempty"`

	// Player is set for OrbPickup.
	Player *Player `json:"player,omitempty" yaml:"player,omitempty"`

	// Name is the character name for SetPOV.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// RawLine is the original log line (only included if requested).
	RawLine string `json:"raw_line,omitempty" yaml:"raw_line,omitempty"`
}

// IsBoundary reports whether the event opens or closes a dive or combat.
func (e Event) IsBoundary() bool {
	switch e.Type {
	case DiveStart, DiveEnd, CombatStart, CombatEnd:
		return true
	}
	return false
}
