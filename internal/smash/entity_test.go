package smash

import (
	"testing"

	"github.com/vovakirdan/asteroid-smasher/internal/core"
)

var testField = Field{W: 240, H: 160}

func TestObstacleAdvanceInside(t *testing.T) {
	o := &Obstacle{Pos: core.Point{X: 50, Y: 60}, Vel: core.Vec{DX: 2, DY: -1}, W: 16, H: 16}
	o.Advance(testField)

	if o.Pos != (core.Point{X: 52, Y: 59}) {
		t.Errorf("Pos = %+v, expected {52 59}", o.Pos)
	}
	if o.Vel != (core.Vec{DX: 2, DY: -1}) {
		t.Errorf("Vel should not change inside the field, got %+v", o.Vel)
	}
}

func TestObstacleReflectsOffEdges(t *testing.T) {
	// Obstacle 16x16 on a 240x160 field: x in [0, 224], y in [0, 144]
	tests := []struct {
		name    string
		pos     core.Point
		vel     core.Vec
		wantPos core.Point
		wantVel core.Vec
	}{
		{"left edge", core.Point{X: 1, Y: 50}, core.Vec{DX: -2, DY: 1}, core.Point{X: 1, Y: 51}, core.Vec{DX: 2, DY: 1}},
		{"right edge", core.Point{X: 223, Y: 50}, core.Vec{DX: 2, DY: 1}, core.Point{X: 223, Y: 51}, core.Vec{DX: -2, DY: 1}},
		{"top edge", core.Point{X: 50, Y: 0}, core.Vec{DX: 1, DY: -1}, core.Point{X: 51, Y: 0}, core.Vec{DX: 1, DY: 1}},
		{"bottom edge", core.Point{X: 50, Y: 144}, core.Vec{DX: -1, DY: 2}, core.Point{X: 49, Y: 144}, core.Vec{DX: -1, DY: -2}},
		{"corner", core.Point{X: 0, Y: 0}, core.Vec{DX: -1, DY: -2}, core.Point{X: 0, Y: 0}, core.Vec{DX: 1, DY: 2}},
		{"exactly on bound", core.Point{X: 222, Y: 142}, core.Vec{DX: 2, DY: 2}, core.Point{X: 224, Y: 144}, core.Vec{DX: 2, DY: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := &Obstacle{Pos: tc.pos, Vel: tc.vel, W: 16, H: 16}
			o.Advance(testField)
			if o.Pos != tc.wantPos {
				t.Errorf("Pos = %+v, expected %+v", o.Pos, tc.wantPos)
			}
			if o.Vel != tc.wantVel {
				t.Errorf("Vel = %+v, expected %+v", o.Vel, tc.wantVel)
			}
		})
	}
}

func TestObstacleSingleStepCorrection(t *testing.T) {
	// Already outside: one reflection is applied, no clamping.
	o := &Obstacle{Pos: core.Point{X: -5, Y: 50}, Vel: core.Vec{DX: -1, DY: 1}, W: 16, H: 16}
	o.Advance(testField)

	if o.Pos.X != -5 {
		t.Errorf("Pos.X = %d, expected -5 (reflect-then-nudge, no clamp)", o.Pos.X)
	}
	if o.Vel.DX != 1 {
		t.Errorf("Vel.DX = %d, expected 1", o.Vel.DX)
	}
}

func TestActorFollowsPointerOnAdvance(t *testing.T) {
	a := NewActor(testField, 12, 12)
	if a.Pos != (core.Point{X: 120, Y: 80}) {
		t.Errorf("new actor should start centered, got %+v", a.Pos)
	}

	a.Aim(core.Point{X: 10, Y: 20})
	if a.Pos != (core.Point{X: 120, Y: 80}) {
		t.Error("Aim should not move the actor before Advance")
	}

	a.Advance(testField)
	if a.Pos != (core.Point{X: 10, Y: 20}) {
		t.Errorf("Pos = %+v, expected {10 20}", a.Pos)
	}

	// The pointer is not clamped
	a.Aim(core.Point{X: -3, Y: 500})
	a.Advance(testField)
	if a.Pos != (core.Point{X: -3, Y: 500}) {
		t.Errorf("Pos = %+v, expected pointer position unchanged", a.Pos)
	}
}

func TestActorBoundsCentered(t *testing.T) {
	a := NewActor(testField, 12, 12)
	a.Aim(core.Point{X: 100, Y: 50})
	a.Advance(testField)

	if b := a.Bounds(); b != core.NewRect(94, 44, 12, 12) {
		t.Errorf("Bounds() = %+v, expected {94 44 12 12}", b)
	}
}

func TestEntityKinds(t *testing.T) {
	var entities []Entity = []Entity{NewActor(testField, 1, 1), &Obstacle{}}
	want := []EntityKind{KindActor, KindObstacle}
	for i, e := range entities {
		if e.Kind() != want[i] {
			t.Errorf("entity %d Kind() = %v, expected %v", i, e.Kind(), want[i])
		}
	}
	if KindActor.String() != "actor" || KindObstacle.String() != "obstacle" {
		t.Error("unexpected EntityKind names")
	}
}
