package event

import "strconv"

// Player is an entity handle that has been matched to a name.
type Player struct {
	Name   string `json:"name" yaml:"name"`
	Aspect Aspect `json:"aspect" yaml:"aspect"`
	ID     int64  `json:"id" yaml:"id"`
}

// Entity is a game entity as referenced by an event.
//
// An entity is either an opaque handle (Player == nil) or a resolved player.
// Resolution happens once, when the event is built, and is never revisited.
type Entity struct {
	ID     int64   `json:"id" yaml:"id"`
	Player *Player `json:"player,omitempty" yaml:"player,omitempty"`
}

// Handle returns an unresolved entity for id.
func Handle(id int64) Entity {
	return Entity{ID: id}
}

// PlayerEntity returns a resolved entity for p.
func PlayerEntity(p Player) Entity {
	return Entity{ID: p.ID, Player: &p}
}

// Resolved reports whether the entity is a known player.
func (e Entity) Resolved() bool {
	return e.Player != nil
}

// String returns the player name, or the handle for opaque entities.
func (e Entity) String() string {
	if e.Player != nil {
		return e.Player.Name
	}
	return "#" + strconv.FormatInt(e.ID, 10)
}
