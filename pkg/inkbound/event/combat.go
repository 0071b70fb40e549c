package event

// Direction classifies a damage event relative to the players in the log.
type Direction int

const (
	// EnemyToEnemy is damage between two unresolved handles.
	EnemyToEnemy Direction = iota
	// PlayerToPlayer is damage between two resolved players.
	PlayerToPlayer
	// Dealt is damage from a player to an unresolved handle.
	Dealt
	// Received is damage from an unresolved handle to a player.
	Received
)

func (d Direction) String() string {
	switch d {
	case EnemyToEnemy:
		return "enemy_to_enemy"
	case PlayerToPlayer:
		return "player_to_player"
	case Dealt:
		return "dealt"
	case Received:
		return "received"
	default:
		return "unknown"
	}
}

// Damage is one EventOnUnitDamaged broadcast.
type Damage struct {
	Source  Entity `json:"source" yaml:"source"`
	Target  Entity `json:"target" yaml:"target"`
	Amount  int64  `json:"amount" yaml:"amount"`
	Ability string `json:"ability" yaml:"ability"`
	Crit    bool   `json:"crit" yaml:"crit"`
	Dodged  bool   `json:"dodged" yaml:"dodged"`
}

// Direction derives the damage direction from the resolution state of the
// source and target at the time the event was built.
func (d *Damage) Direction() Direction {
	switch {
	case d.Source.Resolved() && d.Target.Resolved():
		return PlayerToPlayer
	case d.Source.Resolved():
		return Dealt
	case d.Target.Resolved():
		return Received
	default:
		return EnemyToEnemy
	}
}

// Team is the side a status effect target is on.
type Team struct {
	Kind TeamKind
	Code string // only set when Kind == TeamUnknown
}

// TeamKind enumerates recognized teams.
type TeamKind int

const (
	TeamUnknown TeamKind = iota
	TeamFriendly
	TeamEnemy
)

// TeamFromCode translates the TargetUnitTeam field of a log line.
func TeamFromCode(code string) Team {
	switch code {
	case "Friendly":
		return Team{Kind: TeamFriendly}
	case "Enemy":
		return Team{Kind: TeamEnemy}
	default:
		return Team{Kind: TeamUnknown, Code: code}
	}
}

func (t Team) String() string {
	switch t.Kind {
	case TeamFriendly:
		return "Friendly"
	case TeamEnemy:
		return "Enemy"
	default:
		return t.Code
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Team) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Team) UnmarshalText(text []byte) error {
	*t = TeamFromCode(string(text))
	return nil
}

// StatusEffect is one EventOnUnitStatusEffectStacksAdded broadcast.
type StatusEffect struct {
	Source     Entity `json:"source" yaml:"source"`
	Target     Entity `json:"target" yaml:"target"`
	TargetTeam Team   `json:"target_team" yaml:"target_team"`
	Effect     string `json:"effect" yaml:"effect"`
	Added      int64  `json:"added" yaml:"added"`
	NewValue   int64  `json:"new_value" yaml:"new_value"`
}
