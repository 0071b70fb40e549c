package inkbound

import (
	"sync"

	"github.com/google/uuid"

	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

// CombatLog holds the statistics for one encounter.
type CombatLog struct {
	Stats PlayerStatList `json:"player_stats" yaml:"player_stats"`
}

// NewCombatLog returns an empty combat.
func NewCombatLog() *CombatLog {
	return &CombatLog{Stats: make(PlayerStatList)}
}

// HandleEvent applies a stat-bearing event. Boundary events are inert.
func (c *CombatLog) HandleEvent(ev event.Event) {
	c.Stats.Apply(ev)
}

// Clone returns a deep copy.
func (c *CombatLog) Clone() *CombatLog {
	return &CombatLog{Stats: c.Stats.Clone()}
}

// DiveLog holds the statistics for one run and its combats, newest first.
type DiveLog struct {
	ID      string         `json:"id" yaml:"id"`
	Stats   PlayerStatList `json:"player_stats" yaml:"player_stats"`
	Combats []*CombatLog   `json:"combats" yaml:"combats"`
}

// NewDiveLog returns an empty dive with a fresh ID.
func NewDiveLog() *DiveLog {
	return &DiveLog{
		ID:      uuid.NewString(),
		Stats:   make(PlayerStatList),
		Combats: []*CombatLog{},
	}
}

// HandleEvent routes an event within the dive.
//
// A combat start opens a new combat. Every other event updates the dive
// totals and is forwarded to the current combat, so dive-wide and per-combat
// totals are kept independently from the same stream.
func (d *DiveLog) HandleEvent(ev event.Event) {
	if ev.Type == event.CombatStart {
		d.Combats = append([]*CombatLog{NewCombatLog()}, d.Combats...)
		return
	}

	d.Stats.Apply(ev)
	if c := d.CurrentCombat(); c != nil {
		c.HandleEvent(ev)
	}
}

// CurrentCombat returns the most recent combat, or nil before the first one.
func (d *DiveLog) CurrentCombat() *CombatLog {
	if len(d.Combats) == 0 {
		return nil
	}
	return d.Combats[0]
}

// Clone returns a deep copy.
func (d *DiveLog) Clone() *DiveLog {
	c := &DiveLog{
		ID:      d.ID,
		Stats:   d.Stats.Clone(),
		Combats: make([]*CombatLog, len(d.Combats)),
	}
	for i, combat := range d.Combats {
		c.Combats[i] = combat.Clone()
	}
	return c
}

// DataLog is the root of the parsed session history.
type DataLog struct {
	// Dives is ordered newest first.
	Dives []*DiveLog `json:"dives" yaml:"dives"`

	// POV is the log owner's character name, once a hub join has been seen.
	POV string `json:"pov,omitempty" yaml:"pov,omitempty"`
}

// NewDataLog returns an empty history.
func NewDataLog() *DataLog {
	return &DataLog{Dives: []*DiveLog{}}
}

// HandleEvent routes an event into the history. Events arriving before
// the first dive start are dropped.
func (l *DataLog) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.DiveStart:
		l.Dives = append([]*DiveLog{NewDiveLog()}, l.Dives...)
	case event.SetPOV:
		l.POV = ev.Name
	default:
		if d := l.CurrentDive(); d != nil {
			d.HandleEvent(ev)
		}
	}
}

// HandleEvents applies events in order.
func (l *DataLog) HandleEvents(events []event.Event) {
	for _, ev := range events {
		l.HandleEvent(ev)
	}
}

// CurrentDive returns the most recent dive, or nil before the first one.
func (l *DataLog) CurrentDive() *DiveLog {
	if len(l.Dives) == 0 {
		return nil
	}
	return l.Dives[0]
}

// Clone returns a deep copy that shares nothing with l.
func (l *DataLog) Clone() *DataLog {
	c := &DataLog{
		Dives: make([]*DiveLog, len(l.Dives)),
		POV:   l.POV,
	}
	for i, d := range l.Dives {
		c.Dives[i] = d.Clone()
	}
	return c
}

// SharedDataLog guards a DataLog that is written by a LogReader and read by
// any number of consumers. Readers should copy what they need and return
// quickly; the writer takes the lock once per parsed batch.
type SharedDataLog struct {
	mu  sync.RWMutex
	log *DataLog
}

func newSharedDataLog() *SharedDataLog {
	return &SharedDataLog{log: NewDataLog()}
}

// View calls fn with the DataLog held under the read lock.
// fn must not retain or modify the DataLog.
func (s *SharedDataLog) View(fn func(*DataLog)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.log)
}

// Snapshot returns a deep copy of the current DataLog.
func (s *SharedDataLog) Snapshot() *DataLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log.Clone()
}

// apply runs every event in batch under one write lock.
func (s *SharedDataLog) apply(batch []event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.HandleEvents(batch)
}
