package smash

import "github.com/vovakirdan/asteroid-smasher/internal/core"

// EntitySet owns the actor and the live obstacles of a round.
type EntitySet struct {
	field     Field
	actor     *Actor
	obstacles []*Obstacle
}

// NewEntitySet creates a set holding only the actor.
func NewEntitySet(field Field, actor *Actor) *EntitySet {
	return &EntitySet{
		field:     field,
		actor:     actor,
		obstacles: make([]*Obstacle, 0, 8),
	}
}

// Field returns the play-field size.
func (s *EntitySet) Field() Field {
	return s.field
}

// Actor returns the player-controlled entity.
func (s *EntitySet) Actor() *Actor {
	return s.actor
}

// Obstacles returns the live obstacles in spawn order.
func (s *EntitySet) Obstacles() []*Obstacle {
	return s.obstacles
}

// LiveCount returns the number of live obstacles.
func (s *EntitySet) LiveCount() int {
	return len(s.obstacles)
}

// Add inserts obstacles into the set and marks them alive.
func (s *EntitySet) Add(obs ...*Obstacle) {
	for _, o := range obs {
		o.Alive = true
		s.obstacles = append(s.obstacles, o)
	}
}

// Remove destroys an obstacle. Returns false if it was not in the set.
func (s *EntitySet) Remove(target *Obstacle) bool {
	for i, o := range s.obstacles {
		if o == target {
			o.Alive = false
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves every entity by one tick.
func (s *EntitySet) Advance() {
	for _, e := range s.Entities() {
		e.Advance(s.field)
	}
}

// Collisions returns the live obstacles overlapping the actor, in spawn order.
func (s *EntitySet) Collisions() []*Obstacle {
	hand := s.actor.Bounds()
	var hits []*Obstacle
	for _, o := range s.obstacles {
		if o.Alive && o.Bounds().Intersects(hand) {
			hits = append(hits, o)
		}
	}
	return hits
}

// Entities returns the actor followed by every live obstacle.
func (s *EntitySet) Entities() []Entity {
	all := make([]Entity, 0, len(s.obstacles)+1)
	all = append(all, s.actor)
	for _, o := range s.obstacles {
		all = append(all, o)
	}
	return all
}

// Sprites returns render data for every entity, actor first.
func (s *EntitySet) Sprites() []Sprite {
	sprites := make([]Sprite, 0, len(s.obstacles)+1)
	sprites = append(sprites, Sprite{
		Kind:     KindActor,
		Bounds:   s.actor.Bounds(),
		Smashing: s.actor.Smashing,
	})
	for _, o := range s.obstacles {
		sprites = append(sprites, Sprite{Kind: KindObstacle, Bounds: o.Bounds()})
	}
	return sprites
}

// Sprite is the render data of one entity.
type Sprite struct {
	Kind     EntityKind
	Bounds   core.Rect
	Smashing bool // Actor only
}
