package host

import "waveshooter/game"

// Camera is a top-down viewport over the ground plane. World X maps to screen X and world
// Z to screen Y.
type Camera struct {
	X, Z   float64 // Camera position in world coordinates
	Zoom   float64 // Pixels per world unit
	Width  float64 // Viewport width
	Height float64 // Viewport height
}

// NewCamera creates a camera
func NewCamera(width, height, zoom float64) *Camera {
	return &Camera{
		Zoom:   zoom,
		Width:  width,
		Height: height,
	}
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(p game.Vec2) (float64, float64) {
	sx := (p.X-c.X)*c.Zoom + c.Width/2
	sy := (p.Z-c.Z)*c.Zoom + c.Height/2
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) game.Vec2 {
	return game.Vec2{
		X: (sx-c.Width/2)/c.Zoom + c.X,
		Z: (sy-c.Height/2)/c.Zoom + c.Z,
	}
}

// Follow eases the camera toward target
func (c *Camera) Follow(target game.Vec2, factor float64) {
	c.X += (target.X - c.X) * factor
	c.Z += (target.Z - c.Z) * factor
}

// Visible reports whether a screen point lies inside the viewport grown by margin
func (c *Camera) Visible(sx, sy, margin float64) bool {
	return sx >= -margin && sx <= c.Width+margin && sy >= -margin && sy <= c.Height+margin
}
