package smash

import "github.com/vovakirdan/asteroid-smasher/internal/core"

// EntityKind discriminates the two entity variants.
type EntityKind int

const (
	KindActor EntityKind = iota
	KindObstacle
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Field is the logical play-field size in pixels.
type Field struct {
	W, H int
}

// Entity is the capability shared by the actor and obstacles.
type Entity interface {
	Kind() EntityKind
	Bounds() core.Rect
	Advance(field Field)
}

// Actor is the player-controlled hand. Its position is the pointer position
// reported by the input source; the bounding box is centered on it.
type Actor struct {
	Pos      core.Point
	W, H     int
	Smashing bool // True while the smash button is held

	aim core.Point // Last reported pointer, applied on Advance
}

// NewActor creates an actor centered in the field.
func NewActor(field Field, w, h int) *Actor {
	center := core.Point{X: field.W / 2, Y: field.H / 2}
	return &Actor{Pos: center, W: w, H: h, aim: center}
}

// Kind implements Entity.
func (a *Actor) Kind() EntityKind { return KindActor }

// Aim records the latest pointer position. It takes effect on the next Advance.
func (a *Actor) Aim(p core.Point) {
	a.aim = p
}

// Advance moves the actor to the last reported pointer position. The pointer
// is already in play-field space, so no transform or clamping is applied.
func (a *Actor) Advance(Field) {
	a.Pos = a.aim
}

// Bounds implements Entity.
func (a *Actor) Bounds() core.Rect {
	return core.NewRect(a.Pos.X-a.W/2, a.Pos.Y-a.H/2, a.W, a.H)
}

// Obstacle is an asteroid bouncing around the field.
type Obstacle struct {
	Pos   core.Point // Top-left corner
	Vel   core.Vec
	W, H  int
	Alive bool
}

// Kind implements Entity.
func (o *Obstacle) Kind() EntityKind { return KindObstacle }

// Bounds implements Entity.
func (o *Obstacle) Bounds() core.Rect {
	return core.RectAt(o.Pos, o.W, o.H)
}

// Advance moves the obstacle by its velocity and bounces it off the field
// edges. Each axis is checked on its own: when the new coordinate leaves
// [0, bound] the velocity component is negated and applied once more.
// There is no clamping, so a fast obstacle can stay slightly outside for a
// frame.
func (o *Obstacle) Advance(field Field) {
	o.Pos = o.Pos.Add(o.Vel)

	maxX := field.W - o.W
	if o.Pos.X < 0 || o.Pos.X > maxX {
		o.Vel.DX = -o.Vel.DX
		o.Pos.X += o.Vel.DX
	}

	maxY := field.H - o.H
	if o.Pos.Y < 0 || o.Pos.Y > maxY {
		o.Vel.DY = -o.Vel.DY
		o.Pos.Y += o.Vel.DY
	}
}
