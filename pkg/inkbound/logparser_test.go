package inkbound

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

func TestLogParser_Boundaries(t *testing.T) {
	p := NewLogParser()

	tests := []struct {
		line string
		want event.Type
	}{
		{lineStartDive, event.DiveStart},
		{lineStartCombat, event.CombatStart},
		{lineNextTurn, event.NextTurn},
		{lineEndCombat, event.CombatEnd},
		{lineEndDive, event.DiveEnd},
	}
	for _, tt := range tests {
		ev, ok := p.ParseLine(tt.line)
		require.True(t, ok, tt.line)
		assert.Equal(t, tt.want, ev.Type)
	}
}

func TestLogParser_SetPOV(t *testing.T) {
	ev, ok := NewLogParser().ParseLine(povLine("TestName"))
	require.True(t, ok)
	assert.Equal(t, event.SetPOV, ev.Type)
	assert.Equal(t, "TestName", ev.Name)
}

func TestLogParser_RegistrationsEmitNothing(t *testing.T) {
	p := NewLogParser()

	_, ok := p.ParseLine(nameLine("TestPlayer", 22))
	assert.False(t, ok)
	_, ok = p.ParseLine(classLine(22, "C02"))
	assert.False(t, ok)
	_, ok = p.ParseLine(lineNoise)
	assert.False(t, ok)
}

func TestLogParser_ResolvesPlayers(t *testing.T) {
	p := NewLogParser()
	p.ParseLine(nameLine("TestPlayer", 22))
	p.ParseLine(classLine(22, "C02"))

	ev, ok := p.ParseLine(damageLine(22, 78, 25, true, "Flurry_BaseDamage"))
	require.True(t, ok)
	assert.Equal(t, event.DamageDealt, ev.Type)
	require.NotNil(t, ev.Damage)
	require.True(t, ev.Damage.Source.Resolved())
	assert.Equal(t, "TestPlayer", ev.Damage.Source.Player.Name)
	assert.Equal(t, event.Aspect{Kind: event.Mosscloak}, ev.Damage.Source.Player.Aspect)
	assert.Equal(t, int64(22), ev.Damage.Source.Player.ID)
	assert.Equal(t, event.Handle(78), ev.Damage.Target)
	assert.True(t, ev.Damage.Crit)

	ev, ok = p.ParseLine(damageLine(78, 22, 7, false, "Bite"))
	require.True(t, ok)
	assert.Equal(t, event.DamageReceived, ev.Type)
	assert.Equal(t, "TestPlayer", ev.Damage.Target.Player.Name)
}

func TestLogParser_DamageOther(t *testing.T) {
	p := NewLogParser()
	p.ParseLine(nameLine("A", 1))
	p.ParseLine(nameLine("B", 2))

	ev, ok := p.ParseLine(damageLine(78, 79, 5, false, "Bite"))
	require.True(t, ok)
	assert.Equal(t, event.DamageOther, ev.Type)

	ev, ok = p.ParseLine(damageLine(1, 2, 5, false, "Flurry_BaseDamage"))
	require.True(t, ok)
	assert.Equal(t, event.DamageOther, ev.Type)
	assert.Equal(t, event.PlayerToPlayer, ev.Damage.Direction())
}

func TestLogParser_NameWithoutClass(t *testing.T) {
	p := NewLogParser()
	p.ParseLine(nameLine("TestPlayer", 22))

	ev, ok := p.ParseLine(damageLine(22, 78, 25, false, "Flurry_BaseDamage"))
	require.True(t, ok)
	aspect := ev.Damage.Source.Player.Aspect
	assert.False(t, aspect.Known())
	assert.Equal(t, "22", aspect.Code)
}

func TestLogParser_ResolutionIsNotRevisited(t *testing.T) {
	p := NewLogParser()

	before, ok := p.ParseLine(damageLine(22, 78, 25, false, "Flurry_BaseDamage"))
	require.True(t, ok)
	assert.Equal(t, event.DamageOther, before.Type)

	p.ParseLine(nameLine("TestPlayer", 22))

	assert.False(t, before.Damage.Source.Resolved())
	assert.Equal(t, event.EnemyToEnemy, before.Damage.Direction())

	after, ok := p.ParseLine(damageLine(22, 78, 25, false, "Flurry_BaseDamage"))
	require.True(t, ok)
	assert.Equal(t, event.DamageDealt, after.Type)
}

func TestLogParser_DiveEndClearsCaches(t *testing.T) {
	p := NewLogParser()
	p.ParseLine(nameLine("TestPlayer", 22))
	p.ParseLine(classLine(22, "C01"))

	ev, ok := p.ParseLine(lineEndDive)
	require.True(t, ok)
	assert.Equal(t, event.DiveEnd, ev.Type)

	ev, ok = p.ParseLine(damageLine(22, 78, 25, false, "Flurry_BaseDamage"))
	require.True(t, ok)
	assert.Equal(t, event.DamageOther, ev.Type)
	assert.False(t, ev.Damage.Source.Resolved())
}

func TestLogParser_OrbPickup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := NewLogParser(WithParserLogger(logger))

	_, ok := p.ParseLine(orbLine(9))
	assert.False(t, ok, "unresolved pickup must be dropped")
	assert.Contains(t, buf.String(), "unknown entity picked up an orb")

	p.ParseLine(nameLine("TestPlayer", 9))
	ev, ok := p.ParseLine(orbLine(9))
	require.True(t, ok)
	assert.Equal(t, event.OrbPickup, ev.Type)
	require.NotNil(t, ev.Player)
	assert.Equal(t, "TestPlayer", ev.Player.Name)
}

func TestLogParser_StatusEffect(t *testing.T) {
	p := NewLogParser()
	p.ParseLine(nameLine("TestPlayer", 21))

	ev, ok := p.ParseLine(statusLine(21, 1711, "Burn", 5, 59))
	require.True(t, ok)
	assert.Equal(t, event.StatusEffectAdded, ev.Type)
	require.NotNil(t, ev.Status)
	assert.Equal(t, "TestPlayer", ev.Status.Source.Player.Name)
	assert.Equal(t, event.Handle(1711), ev.Status.Target)
	assert.Equal(t, "Burn", ev.Status.Effect)
	assert.Equal(t, int64(5), ev.Status.Added)
	assert.Equal(t, int64(59), ev.Status.NewValue)
	assert.Equal(t, event.TeamEnemy, ev.Status.TargetTeam.Kind)

	// Unresolved casters are still reported.
	_, ok = p.ParseLine(statusLine(500, 1711, "Poison", 1, 1))
	assert.True(t, ok)
}

func TestLogParser_RawLines(t *testing.T) {
	ev, ok := NewLogParser(WithRawLines(true)).ParseLine(lineStartDive)
	require.True(t, ok)
	assert.Equal(t, lineStartDive, ev.RawLine)

	ev, ok = NewLogParser().ParseLine(lineStartDive)
	require.True(t, ok)
	assert.Empty(t, ev.RawLine)
}

func TestLogParser_ParseLines(t *testing.T) {
	events := NewLogParser().ParseLines([]string{
		lineStartDive,
		nameLine("P", 22),
		lineNoise,
		lineStartCombat,
		damageLine(22, 78, 25, false, "Flurry_BaseDamage"),
	})

	types := make([]event.Type, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	assert.Equal(t, []event.Type{event.DiveStart, event.CombatStart, event.DamageDealt}, types)
}

func TestLogParser_MalformedLineSkipped(t *testing.T) {
	line := "0T23:24:03 57 I Setting unit class for animation-UnitEntityHandle:(EntityHandle:99999999999999999999)-classType:C01"
	_, ok := NewLogParser().ParseLine(line)
	assert.False(t, ok)
}
