package host

import (
	"math"
	"testing"

	"waveshooter/game"
)

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(800, 600, 10)
	c.X, c.Z = 3, -4

	if sx, sy := c.WorldToScreen(game.Vec2{X: 3, Z: -4}); sx != 400 || sy != 300 {
		t.Fatalf("camera target at (%v,%v), want screen center", sx, sy)
	}

	p := game.Vec2{X: -7.5, Z: 12.25}
	sx, sy := c.WorldToScreen(p)
	back := c.ScreenToWorld(sx, sy)
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Z-p.Z) > 1e-9 {
		t.Fatalf("round trip %v -> %v", p, back)
	}
}

func TestCameraFollow(t *testing.T) {
	c := NewCamera(100, 100, 1)
	c.Follow(game.Vec2{X: 10, Z: -10}, 0.5)
	if c.X != 5 || c.Z != -5 {
		t.Fatalf("camera at (%v,%v), want (5,-5)", c.X, c.Z)
	}
	c.Follow(game.Vec2{X: 10, Z: -10}, 1)
	if c.X != 10 || c.Z != -10 {
		t.Fatalf("full follow landed at (%v,%v)", c.X, c.Z)
	}
}

func TestCameraVisible(t *testing.T) {
	c := NewCamera(100, 50, 1)
	tests := []struct {
		x, y, margin float64
		want         bool
	}{
		{50, 25, 0, true},
		{0, 0, 0, true},
		{100, 50, 0, true},
		{-1, 25, 0, false},
		{-1, 25, 2, true},
		{50, 51, 0, false},
		{50, 51, 1, true},
	}
	for _, tt := range tests {
		if got := c.Visible(tt.x, tt.y, tt.margin); got != tt.want {
			t.Errorf("Visible(%v,%v,%v) = %v, want %v", tt.x, tt.y, tt.margin, got, tt.want)
		}
	}
}
