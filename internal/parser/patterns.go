package parser

import "regexp"

// Compiled regex patterns for line classification.
// The order they are tried in lives in Classify; keep both in sync.
var (
	// Matches: "broadcasting EventOnUnitDamaged-...-TargetUnitHandle:(EntityHandle:78)
	//   -SourceEntityHandle:(EntityHandle:22)-...-DamageAmount:25-IsCriticalHit:False
	//   -WasDodged:False-ActionData:ActionData-Flurry_BaseDamage_Action (...)"
	// Captures: target, source, amount, crit, dodged, ability
	damagePattern = regexp.MustCompile(
		`EventOnUnitDamaged.*?TargetUnitHandle:\(EntityHandle:(?P<target>\d+)\)` +
			`.*?SourceEntityHandle:\(EntityHandle:(?P<source>\d+)\)` +
			`.*?DamageAmount:(?P<amount>\d+)` +
			`.*?IsCriticalHit:(?P<crit>True|False)-WasDodged:(?P<dodged>True|False)` +
			`-ActionData:ActionData-(?P<ability>\w+)_Action`,
	)

	// Matches: "Setting unit class for animation-UnitEntityHandle:(EntityHandle:22)-classType:C02"
	// Also matches handles that never turn out to be players; harmless, since
	// a class without a registered name never resolves.
	// Captures: (1) handle, (2) class code
	unitClassPattern = regexp.MustCompile(
		`Setting unit class.*?UnitEntityHandle:\(EntityHandle:(\d+)\)-classType:(\w+)`,
	)

	// Matches: " I TestPlayer (EntityHandle:22) is playing ability ..."
	// Captures: (1) player name, (2) handle
	registerNamePattern = regexp.MustCompile(
		` I (\w+) \(EntityHandle:(\d+)\) is playing ability`,
	)

	// Matches: "...PlayerUnitHandle:(EntityHandle:9)-...-PickupData:PickupData-ManaOrbPickup ..."
	// Captures: (1) handle
	orbPickupPattern = regexp.MustCompile(
		`PlayerUnitHandle:\(EntityHandle:(\d+)\).*PickupData-ManaOrbPickup`,
	)

	// Matches: "Joining hub - characterId: 0000, characterName: TestName, partyId: ..."
	// Captures: (1) character name
	joiningHubPattern = regexp.MustCompile(
		`Joining hub.*characterName: (.*), partyId`,
	)

	// Matches: "broadcasting EventOnUnitStatusEffectStacksAdded-...
	//   -TargetUnitEntityHandle:(EntityHandle:1711)-CasterUnitEntityHandle:(EntityHandle:21)
	//   -TargetUnitTeam:Enemy-...-StatusEffectData:StatusEffectData-Burn_StatusEffect (...)
	//   -StacksAdded:5-NewStacksValue:59"
	// Captures: target, source, team, effect, added, newvalue
	statusEffectPattern = regexp.MustCompile(
		`EventOnUnitStatusEffectStacksAdded.*TargetUnitEntityHandle:\(EntityHandle:(?P<target>\d+)\)` +
			`-CasterUnitEntityHandle:\(EntityHandle:(?P<source>\d+)\)` +
			`-TargetUnitTeam:(?P<team>\w+)` +
			`.*StatusEffectData:StatusEffectData-(?P<effect>\w+)_StatusEffect` +
			`.*StacksAdded:(?P<added>\d+)-NewStacksValue:(?P<newvalue>\d+)`,
	)
)

// Plain substring markers. These lines carry no payload.
const (
	diveStartMarker   = "Party run start triggered"
	combatStartMarker = "EventOnCombatStarted"
	combatEndMarker   = "EventOnCombatEndSequenceStarted"
	nextTurnMarker    = "QuestObjective_TurnCount"
	diveEndMarker     = "broadcasting EventSetGameState-EndRun"
)
