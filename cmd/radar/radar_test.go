package main

import (
	"math"
	"testing"
	"time"

	"waveshooter/game"
)

func TestRadarPutsHeadingUp(t *testing.T) {
	r := newRadar(82, 43, 10, game.Vec2{X: 5, Z: 5}, game.Vec2{Z: -1})
	if x, y := r.project(game.Vec2{X: 5, Z: 5}); x != r.cx || y != r.cy {
		t.Fatalf("player at (%d,%d), want center (%d,%d)", x, y, r.cx, r.cy)
	}
	if _, y := r.project(game.Vec2{X: 5, Z: 0}); y >= r.cy {
		t.Fatalf("a point ahead should be above the center, row %d", y)
	}
	if x, _ := r.project(game.Vec2{X: 8, Z: 5}); x <= r.cx {
		t.Fatalf("a point to the right should be right of the center, col %d", x)
	}

	// facing +X, a point at +X is straight ahead
	r = newRadar(82, 43, 10, game.Vec2{}, game.Vec2{X: 1})
	x, y := r.project(game.Vec2{X: 4})
	if x != r.cx || y >= r.cy {
		t.Fatalf("ahead point at (%d,%d), center (%d,%d)", x, y, r.cx, r.cy)
	}
}

func TestRadarZeroHeading(t *testing.T) {
	r := newRadar(40, 20, 30, game.Vec2{}, game.Vec2{})
	if r.forward != (game.Vec2{Z: -1}) {
		t.Fatalf("forward = %v", r.forward)
	}
}

func TestPilotHoldWindow(t *testing.T) {
	p := newPilot()
	t0 := time.Unix(100, 0)
	p.press('w', t0)

	in := p.step(t0.Add(50*time.Millisecond), 0.5)
	if math.Abs(in.Position.Z+3) > 1e-9 || math.Abs(in.Position.X) > 1e-9 {
		t.Fatalf("position = %v, want (0,-3)", in.Position)
	}

	in = p.step(t0.Add(time.Second), 0.5)
	if math.Abs(in.Position.Z+3) > 1e-9 {
		t.Fatalf("released key kept moving: %v", in.Position)
	}

	p.reset()
	if p.pos != (game.Vec2{}) || p.heading != 0 || len(p.held) != 0 {
		t.Fatalf("reset left %+v", p)
	}
}
