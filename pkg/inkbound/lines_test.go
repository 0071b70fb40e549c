package inkbound

import "fmt"

// Builders for log lines in the format the game writes them.

const (
	lineStartDive   = "0T23:24:45 80 I Party run start triggered - solo party: False"
	lineEndDive     = "0T01:02:03 11 I [EventSystem] broadcasting EventSetGameState-EndRun"
	lineStartCombat = "0T23:26:31 50 I [EventSystem] broadcasting EventOnCombatStarted-WorldStateChangeCombatStarted-CombatZoneHandle:(EntityHandle:68)-TriggeringInteractableHandle:(EntityHandle:69)"
	lineEndCombat   = "0T23:47:19 32 I [EventSystem] broadcasting EventOnCombatEndSequenceStarted-WorldStateChangeCombatFinishedStartSequence"
	lineNextTurn    = "0T23:45:57 21 I Evaluating quest progress for (EntityHandle:16) with 101 active quests. Record variable: QuestObjective_TurnCount"
	lineNoise       = "0T23:45:57 21 I Loading scene Hub_Main"
)

func damageLine(source, target, amount int64, crit bool, ability string) string {
	return fmt.Sprintf("0T23:17:51 70 I [EventSystem] broadcasting EventOnUnitDamaged-WorldStateChangeDamageUnit-"+
		"TargetUnitHandle:(EntityHandle:%d)-SourceEntityHandle:(EntityHandle:%d)-TargetUnitTeam:Enemy-IsInActiveCombat:True-"+
		"DamageAmount:%d-IsCriticalHit:%s-WasDodged:False-ActionData:ActionData-%s_Action (UPNE5APs)-"+
		"AbilityData:AbilityData-Flurry_AbilityData (Flurry my7gMbFo)-StatusEffectData:(none)-LootableData:(none)",
		target, source, amount, gameBool(crit), ability)
}

func nameLine(name string, id int64) string {
	return fmt.Sprintf("0T23:17:51 66 I %s (EntityHandle:%d) is playing ability AbilityData-Flurry_AbilityData (Flurry my7gMbFo)", name, id)
}

func classLine(id int64, code string) string {
	return fmt.Sprintf("0T23:24:03 57 I Setting unit class for animation-UnitEntityHandle:(EntityHandle:%d)-classType:%s", id, code)
}

func orbLine(id int64) string {
	return fmt.Sprintf("0T00:51:46 18 I [EventSystem] broadcasting EventOnPickupActivated-WorldStateChangePickupActivated-"+
		"PlayerUnitHandle:(EntityHandle:%d)-PickupHandle:(EntityHandle:95)-PickupData:PickupData-ManaOrbPickup "+
		"(PickupData_pickupName-taadPy97-ccebe8a3bf921d043ac03a49bce8019f LzTNf24V)", id)
}

func statusLine(source, target int64, effect string, added, newValue int64) string {
	return fmt.Sprintf("0T03:43:12 98 I [EventSystem] broadcasting EventOnUnitStatusEffectStacksAdded-WorldStateChangeUnitAddStatusEffectStacks-"+
		"TargetUnitEntityHandle:(EntityHandle:%d)-CasterUnitEntityHandle:(EntityHandle:%d)-TargetUnitTeam:Enemy-IsInActiveCombat:True-"+
		"StatusEffectInstanceHandle:(Handle:3372)-StatusEffectData:StatusEffectData-%s_StatusEffect "+
		"(HelperData_titleKey-vdrSrrVG-f73d28c6d6a09c44e9b41ad2b3704826 sXmQNYjg)-StacksAdded:%d-NewStacksValue:%d",
		target, source, effect, added, newValue)
}

func povLine(name string) string {
	return fmt.Sprintf("0T00:44:47 45 I Joining hub - characterId: 00000000000, characterName: %s, partyId: 392f1b98-4d51-4379-8624-72cce1bab72b", name)
}

func gameBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
