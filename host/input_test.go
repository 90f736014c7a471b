package host

import (
	"math"
	"testing"

	"waveshooter/game"
)

func near(a, b game.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

func TestControlsForwardFacesNegativeZ(t *testing.T) {
	c := NewControls()
	in := c.Step(Keys{Forward: true}, 0.5)
	if !near(in.Forward, game.Vec2{X: 0, Z: -1}) {
		t.Fatalf("forward = %v", in.Forward)
	}
	if !near(in.Position, game.Vec2{X: 0, Z: -3}) {
		t.Fatalf("position = %v, want (0,-3)", in.Position)
	}
}

func TestControlsStrafe(t *testing.T) {
	c := NewControls()
	in := c.Step(Keys{Right: true}, 1)
	if !near(in.Position, game.Vec2{X: 6, Z: 0}) {
		t.Fatalf("strafe right = %v", in.Position)
	}
	in = c.Step(Keys{Left: true}, 1)
	if !near(in.Position, game.Vec2{}) {
		t.Fatalf("strafe back = %v", in.Position)
	}
}

func TestControlsDiagonalIsNormalized(t *testing.T) {
	c := NewControls()
	in := c.Step(Keys{Forward: true, Right: true}, 1)
	if d := math.Hypot(in.Position.X, in.Position.Z); math.Abs(d-c.MoveSpeed) > 1e-9 {
		t.Fatalf("diagonal distance = %v, want %v", d, c.MoveSpeed)
	}
}

func TestControlsTurn(t *testing.T) {
	c := NewControls()
	c.TurnSpeed = math.Pi / 2
	in := c.Step(Keys{TurnRt: true}, 1)
	if !near(in.Forward, game.Vec2{X: 1, Z: 0}) {
		t.Fatalf("after a quarter turn right forward = %v", in.Forward)
	}
	if !near(in.Position, game.Vec2{}) {
		t.Fatalf("turning moved the ship to %v", in.Position)
	}
}

func TestControlsIdleAndReset(t *testing.T) {
	c := NewControls()
	in := c.Step(Keys{Forward: true, Back: true}, 1)
	if !near(in.Position, game.Vec2{}) {
		t.Fatalf("opposing keys moved the ship to %v", in.Position)
	}
	c.Step(Keys{Forward: true, TurnLeft: true}, 1)
	c.Reset()
	if c.Pos != (game.Vec2{}) || c.Heading != 0 {
		t.Fatalf("reset left pos %v heading %v", c.Pos, c.Heading)
	}
}
