package game

import (
	"math"
	"strconv"
	"time"
)

// EntityID identifies a pooled record for its whole lifetime. IDs come from a per-game
// counter and are never reused within a session.
type EntityID uint64

// Vec2 is a point or direction on the XZ ground plane
type Vec2 struct {
	X float64 `json:"x" msgpack:"x"`
	Z float64 `json:"z" msgpack:"z"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Z + o.Z} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Z - o.Z} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Z * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Z*o.Z }

// Len2 returns the squared length
func (v Vec2) Len2() float64 { return v.X*v.X + v.Z*v.Z }

// Normalized returns the unit vector along v. ok is false for zero or non-finite input.
func (v Vec2) Normalized() (Vec2, bool) {
	l := math.Sqrt(v.Len2())
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Z / l}, true
}

// Right returns the lateral axis for a forward heading, (-fz, fx)
func (v Vec2) Right() Vec2 { return Vec2{-v.Z, v.X} }

// Bullet is a player projectile travelling in a straight line
type Bullet struct {
	ID  EntityID `json:"id" msgpack:"id"`
	Pos Vec2     `json:"pos" msgpack:"pos"`
	Vel Vec2     `json:"vel" msgpack:"vel"`
}

// Enemy moves along a unit direction scaled by the current wave speed
type Enemy struct {
	ID  EntityID `json:"id" msgpack:"id"`
	Pos Vec2     `json:"pos" msgpack:"pos"`
	Vel Vec2     `json:"vel" msgpack:"vel"`
	HP  int      `json:"hp" msgpack:"hp"`
}

// ItemType is the power-up kind
type ItemType int

const (
	ItemGrow ItemType = iota
	ItemShrink
	ItemSpeed
	ItemHeal

	itemTypeCount
)

// ItemTypes lists every item kind in render order
var ItemTypes = [...]ItemType{ItemGrow, ItemShrink, ItemSpeed, ItemHeal}

func (t ItemType) String() string {
	switch t {
	case ItemGrow:
		return "+"
	case ItemShrink:
		return "-"
	case ItemSpeed:
		return "speed"
	case ItemHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// Item drifts toward the player and applies its effect on contact
type Item struct {
	ID   EntityID `json:"id" msgpack:"id"`
	Pos  Vec2     `json:"pos" msgpack:"pos"`
	Vel  Vec2     `json:"vel" msgpack:"vel"`
	Type ItemType `json:"type" msgpack:"type"`
}

// HitEffect is a short-lived burst left where an enemy died
type HitEffect struct {
	ID    EntityID `json:"id" msgpack:"id"`
	Pos   Vec2     `json:"pos" msgpack:"pos"`
	Age   float64  `json:"age" msgpack:"age"`
	Chain int      `json:"chain" msgpack:"chain"`
}

// ChainLabel is the floating combo counter. It ages on the wall clock rather than on frame
// deltas so a host UI can fade it independently of the tick rate.
type ChainLabel struct {
	ID      EntityID  `json:"id" msgpack:"id"`
	Pos     Vec2      `json:"pos" msgpack:"pos"`
	Chain   int       `json:"chain" msgpack:"chain"`
	Max     bool      `json:"max" msgpack:"max"`
	Created time.Time `json:"created" msgpack:"created"`
}

// Text renders the label: "MAX" at the configured cap, otherwise "xN"
func (l ChainLabel) Text() string {
	if l.Max {
		return "MAX"
	}
	return "x" + strconv.Itoa(l.Chain)
}
