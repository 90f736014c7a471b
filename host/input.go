package host

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"waveshooter/game"
)

// Keys is the control state sampled for one frame
type Keys struct {
	Forward, Back    bool
	Left, Right      bool
	TurnLeft, TurnRt bool
	Confirm          bool
}

// Controls owns the player pose. Movement is relative to the heading: forward/back along
// it, left/right strafe along its right axis.
type Controls struct {
	Pos     game.Vec2
	Heading float64 // radians; 0 looks toward -Z

	MoveSpeed float64 // units per second
	TurnSpeed float64 // radians per second

	keys []ebiten.Key
}

// NewControls creates controls at the origin facing -Z
func NewControls() *Controls {
	return &Controls{
		MoveSpeed: 6,
		TurnSpeed: 2.2,
		keys:      make([]ebiten.Key, 0, 10),
	}
}

// Poll samples the keyboard
func (c *Controls) Poll() Keys {
	c.keys = inpututil.AppendPressedKeys(c.keys[:0])
	var k Keys
	for _, key := range c.keys {
		switch key {
		case ebiten.KeyW:
			k.Forward = true
		case ebiten.KeyS:
			k.Back = true
		case ebiten.KeyA:
			k.Left = true
		case ebiten.KeyD:
			k.Right = true
		case ebiten.KeyQ, ebiten.KeyArrowLeft:
			k.TurnLeft = true
		case ebiten.KeyE, ebiten.KeyArrowRight:
			k.TurnRt = true
		}
	}
	k.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return k
}

// Forward returns the unit heading on the ground plane
func (c *Controls) Forward() game.Vec2 {
	return game.Vec2{X: math.Sin(c.Heading), Z: -math.Cos(c.Heading)}
}

// Step applies k for dt seconds and returns the pose for the simulation
func (c *Controls) Step(k Keys, dt float64) game.Input {
	if k.TurnLeft {
		c.Heading -= c.TurnSpeed * dt
	}
	if k.TurnRt {
		c.Heading += c.TurnSpeed * dt
	}

	fwd := c.Forward()
	right := fwd.Right()
	var move game.Vec2
	if k.Forward {
		move = move.Add(fwd)
	}
	if k.Back {
		move = move.Sub(fwd)
	}
	if k.Right {
		move = move.Add(right)
	}
	if k.Left {
		move = move.Sub(right)
	}
	if dir, ok := move.Normalized(); ok {
		c.Pos = c.Pos.Add(dir.Scale(c.MoveSpeed * dt))
	}
	return game.Input{Position: c.Pos, Forward: fwd}
}

// Reset returns to the origin facing -Z
func (c *Controls) Reset() {
	c.Pos = game.Vec2{}
	c.Heading = 0
}
