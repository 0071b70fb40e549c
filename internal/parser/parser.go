// Package parser classifies single Inkbound log lines.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

// ErrMalformedLine is wrapped by MalformedLineError.
var ErrMalformedLine = errors.New("malformed log line")

// MalformedLineError reports a line that matched a pattern but whose captured
// fields could not be converted (e.g. a handle that overflows int64).
type MalformedLineError struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%v: %s field %q: %v", ErrMalformedLine, e.Kind, e.Field, e.Err)
}

// Unwrap returns ErrMalformedLine so errors.Is works on both the sentinel and the cause.
func (e *MalformedLineError) Unwrap() []error {
	return []error{ErrMalformedLine, e.Err}
}

// Kind identifies what a line was classified as.
type Kind int

const (
	// KindUnknown is an unrecognized line. Not an error.
	KindUnknown Kind = iota
	// KindEvent is a line that maps directly to a publishable event.
	KindEvent
	// KindDamage carries raw, unresolved damage.
	KindDamage
	// KindStatusEffect carries a raw, unresolved status effect.
	KindStatusEffect
	// KindOrbPickup carries the unresolved handle that picked up an orb.
	KindOrbPickup
	// KindRegisterName maps a handle to a player name.
	KindRegisterName
	// KindUnitClass maps a handle to a class code.
	KindUnitClass
	// KindDiveEnd signals the end of a run.
	KindDiveEnd
)

func (k Kind) String() string {
	switch k {
	case KindEvent:
		return "event"
	case KindDamage:
		return "damage"
	case KindStatusEffect:
		return "status_effect"
	case KindOrbPickup:
		return "orb_pickup"
	case KindRegisterName:
		return "register_name"
	case KindUnitClass:
		return "unit_class"
	case KindDiveEnd:
		return "dive_end"
	default:
		return "unknown"
	}
}

// Result is the classification of one line.
// Entities in Damage and Status are always unresolved handles.
type Result struct {
	Kind Kind

	// Event is set for KindEvent.
	Event *event.Event

	// Damage is set for KindDamage.
	Damage *event.Damage

	// Status is set for KindStatusEffect.
	Status *event.StatusEffect

	// ID is the handle for KindOrbPickup, KindRegisterName and KindUnitClass.
	ID int64

	// Name is the player name for KindRegisterName.
	Name string

	// Class is the raw class code for KindUnitClass.
	Class string
}

// Classify matches a line against the known patterns. The first matching
// pattern wins, so the order below encodes priority.
//
// Returns:
//   - (Result{Kind: KindUnknown}, nil): not a recognized line
//   - (Result, nil): classified line
//   - (Result{Kind: KindUnknown}, error): matched, but a field was malformed
func Classify(line string) (Result, error) {
	// Trim trailing CR/LF for Windows CRLF compatibility
	line = strings.TrimRight(line, "\r\n")

	if m := damagePattern.FindStringSubmatch(line); m != nil {
		return classifyDamage(m)
	}
	if m := unitClassPattern.FindStringSubmatch(line); m != nil {
		id, err := parseHandle(KindUnitClass, "handle", m[1])
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindUnitClass, ID: id, Class: m[2]}, nil
	}
	if m := registerNamePattern.FindStringSubmatch(line); m != nil {
		id, err := parseHandle(KindRegisterName, "handle", m[2])
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindRegisterName, ID: id, Name: m[1]}, nil
	}
	if m := orbPickupPattern.FindStringSubmatch(line); m != nil {
		id, err := parseHandle(KindOrbPickup, "handle", m[1])
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindOrbPickup, ID: id}, nil
	}
	if m := joiningHubPattern.FindStringSubmatch(line); m != nil {
		return direct(event.Event{Type: event.SetPOV, Name: m[1]}), nil
	}
	if m := statusEffectPattern.FindStringSubmatch(line); m != nil {
		return classifyStatusEffect(m)
	}
	if strings.Contains(line, diveStartMarker) {
		return direct(event.Event{Type: event.DiveStart}), nil
	}
	if strings.Contains(line, combatStartMarker) {
		return direct(event.Event{Type: event.CombatStart}), nil
	}
	if strings.Contains(line, combatEndMarker) {
		return direct(event.Event{Type: event.CombatEnd}), nil
	}
	if strings.Contains(line, nextTurnMarker) {
		return direct(event.Event{Type: event.NextTurn}), nil
	}
	if strings.Contains(line, diveEndMarker) {
		return Result{Kind: KindDiveEnd}, nil
	}

	return Result{Kind: KindUnknown}, nil
}

func direct(ev event.Event) Result {
	return Result{Kind: KindEvent, Event: &ev}
}

func classifyDamage(m []string) (Result, error) {
	get := func(name string) string { return m[damagePattern.SubexpIndex(name)] }

	target, err := parseHandle(KindDamage, "target", get("target"))
	if err != nil {
		return Result{}, err
	}
	source, err := parseHandle(KindDamage, "source", get("source"))
	if err != nil {
		return Result{}, err
	}
	amount, err := parseHandle(KindDamage, "amount", get("amount"))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Kind: KindDamage,
		Damage: &event.Damage{
			Source:  event.Handle(source),
			Target:  event.Handle(target),
			Amount:  amount,
			Ability: get("ability"),
			Crit:    get("crit") == "True",
			Dodged:  get("dodged") == "True",
		},
	}, nil
}

func classifyStatusEffect(m []string) (Result, error) {
	get := func(name string) string { return m[statusEffectPattern.SubexpIndex(name)] }

	target, err := parseHandle(KindStatusEffect, "target", get("target"))
	if err != nil {
		return Result{}, err
	}
	source, err := parseHandle(KindStatusEffect, "source", get("source"))
	if err != nil {
		return Result{}, err
	}
	added, err := parseHandle(KindStatusEffect, "added", get("added"))
	if err != nil {
		return Result{}, err
	}
	newValue, err := parseHandle(KindStatusEffect, "newvalue", get("newvalue"))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Kind: KindStatusEffect,
		Status: &event.StatusEffect{
			Source:     event.Handle(source),
			Target:     event.Handle(target),
			TargetTeam: event.TeamFromCode(get("team")),
			Effect:     get("effect"),
			Added:      added,
			NewValue:   newValue,
		},
	}, nil
}

// parseHandle converts a captured run of digits. The patterns only capture
// \d+, so the only possible failure is overflow.
func parseHandle(kind Kind, field, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &MalformedLineError{Kind: kind, Field: field, Err: err}
	}
	return n, nil
}
