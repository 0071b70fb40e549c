package inkbound

import (
	"maps"
	"sort"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

// PlayerStats holds running totals for one player.
type PlayerStats struct {
	Player              event.Player `json:"player" yaml:"player"`
	TotalDamageDealt    int64        `json:"total_damage_dealt" yaml:"total_damage_dealt"`
	TotalDamageReceived int64        `json:"total_damage_received" yaml:"total_damage_received"`

	// SkillTotals maps ability name to damage dealt with it.
	SkillTotals map[string]int64 `json:"skill_totals" yaml:"skill_totals"`

	// CritTotals is the subset of SkillTotals dealt by critical hits.
	CritTotals map[string]int64 `json:"crit_totals" yaml:"crit_totals"`

	// StatusApplied maps status effect name to stacks added to this player.
	StatusApplied map[string]int64 `json:"status_applied" yaml:"status_applied"`

	OrbPickups int64 `json:"orb_pickups" yaml:"orb_pickups"`
}

// NewPlayerStats returns zeroed stats for p.
func NewPlayerStats(p event.Player) *PlayerStats {
	return &PlayerStats{
		Player:        p,
		SkillTotals:   make(map[string]int64),
		CritTotals:    make(map[string]int64),
		StatusApplied: make(map[string]int64),
	}
}

func (s *PlayerStats) applyDealt(dmg *event.Damage) {
	s.TotalDamageDealt += dmg.Amount
	s.SkillTotals[dmg.Ability] += dmg.Amount
	if dmg.Crit {
		s.CritTotals[dmg.Ability] += dmg.Amount
	}
}

func (s *PlayerStats) applyReceived(dmg *event.Damage) {
	s.TotalDamageReceived += dmg.Amount
}

func (s *PlayerStats) clone() *PlayerStats {
	c := *s
	c.SkillTotals = maps.Clone(s.SkillTotals)
	c.CritTotals = maps.Clone(s.CritTotals)
	c.StatusApplied = maps.Clone(s.StatusApplied)
	return &c
}

// CritDamage returns the total damage dealt by critical hits.
func (s *PlayerStats) CritDamage() int64 {
	var total int64
	for _, v := range s.CritTotals {
		total += v
	}
	return total
}

// DamagePerOrb returns damage dealt per orb picked up, or 0 without pickups.
func (s *PlayerStats) DamagePerOrb() float64 {
	if s.OrbPickups == 0 {
		return 0
	}
	return float64(s.TotalDamageDealt) / float64(s.OrbPickups)
}

// PlayerStatList is a set of PlayerStats keyed by player name.
// Entries are created the first time a player shows up.
type PlayerStatList map[string]*PlayerStats

func (l PlayerStatList) get(p *event.Player) *PlayerStats {
	s, ok := l[p.Name]
	if !ok {
		s = NewPlayerStats(*p)
		l[p.Name] = s
	}
	return s
}

// Apply folds an event into the list. Events that do not carry player
// statistics are ignored, as are damage_other events.
func (l PlayerStatList) Apply(ev event.Event) {
	switch ev.Type {
	case event.DamageDealt:
		if ev.Damage != nil && ev.Damage.Source.Resolved() {
			l.get(ev.Damage.Source.Player).applyDealt(ev.Damage)
		}
	case event.DamageReceived:
		if ev.Damage != nil && ev.Damage.Target.Resolved() {
			l.get(ev.Damage.Target.Player).applyReceived(ev.Damage)
		}
	case event.OrbPickup:
		if ev.Player != nil {
			l.get(ev.Player).OrbPickups++
		}
	case event.StatusEffectAdded:
		if ev.Status != nil && ev.Status.Target.Resolved() {
			l.get(ev.Status.Target.Player).StatusApplied[ev.Status.Effect] += ev.Status.Added
		}
	}
}

// Names returns the player names in sorted order.
func (l PlayerStatList) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalDamageDealt sums damage dealt across all players.
func (l PlayerStatList) TotalDamageDealt() int64 {
	var total int64
	for _, s := range l {
		total += s.TotalDamageDealt
	}
	return total
}

// Clone returns a deep copy.
func (l PlayerStatList) Clone() PlayerStatList {
	c := make(PlayerStatList, len(l))
	for name, s := range l {
		c[name] = s.clone()
	}
	return c
}
