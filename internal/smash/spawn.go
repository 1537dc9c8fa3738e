package smash

import (
	"math/rand"

	"github.com/vovakirdan/asteroid-smasher/internal/core"
)

// SpawnPolicy keeps the asteroid population going. Every time the field is
// cleared the target grows by one and a full new wave is created, so each
// clear makes the round permanently harder.
type SpawnPolicy struct {
	target int
	speeds []int
	w, h   int
	rng    *rand.Rand
}

// NewSpawnPolicy creates a policy with the given initial target.
// speeds lists the allowed velocity magnitudes per axis.
func NewSpawnPolicy(rng *rand.Rand, initial int, speeds []int, w, h int) *SpawnPolicy {
	return &SpawnPolicy{
		target: initial,
		speeds: speeds,
		w:      w,
		h:      h,
		rng:    rng,
	}
}

// Target returns the current spawn target.
func (p *SpawnPolicy) Target() int {
	return p.target
}

// Populate creates the opening wave of Target obstacles.
func (p *SpawnPolicy) Populate(set *EntitySet) {
	p.spawnWave(set)
}

// Refill checks for an empty field. When no obstacle is left the target is
// incremented and that many new obstacles are created. Reports whether a new
// wave was spawned.
func (p *SpawnPolicy) Refill(set *EntitySet) bool {
	if set.LiveCount() > 0 {
		return false
	}
	p.target++
	p.spawnWave(set)
	return true
}

func (p *SpawnPolicy) spawnWave(set *EntitySet) {
	field := set.Field()
	for i := 0; i < p.target; i++ {
		set.Add(p.newObstacle(field))
	}
}

// newObstacle places an obstacle anywhere it fits completely on the field,
// with each velocity component drawn independently.
func (p *SpawnPolicy) newObstacle(field Field) *Obstacle {
	pos := core.Point{
		X: p.rng.Intn(core.Max(1, field.W-p.w+1)),
		Y: p.rng.Intn(core.Max(1, field.H-p.h+1)),
	}
	return &Obstacle{
		Pos: pos,
		Vel: core.Vec{DX: p.randomComponent(), DY: p.randomComponent()},
		W:   p.w,
		H:   p.h,
	}
}

// randomComponent returns a non-zero speed with a random sign.
func (p *SpawnPolicy) randomComponent() int {
	v := p.speeds[p.rng.Intn(len(p.speeds))]
	if p.rng.Intn(2) == 0 {
		return -v
	}
	return v
}
