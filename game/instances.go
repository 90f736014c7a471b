package game

// OffScene is where renderers park unused instance slots
var OffScene = Vec3{X: 0, Y: -1000, Z: 0}

// ObjectY is the height at which entities fly
const ObjectY = 0.0

// Vec3 is an instance position for renderers that draw in 3D
type Vec3 struct {
	X, Y, Z float64
}

// FillInstances writes one position per slot of dst: live records first, in pool order,
// then OffScene for every remaining slot. pos extracts the ground position of a record.
// It returns the number of live slots written.
func FillInstances[T any](dst []Vec3, live []T, pos func(*T) Vec2) int {
	n := min(len(live), len(dst))
	for i := 0; i < n; i++ {
		p := pos(&live[i])
		dst[i] = Vec3{X: p.X, Y: ObjectY, Z: p.Z}
	}
	for i := n; i < len(dst); i++ {
		dst[i] = OffScene
	}
	return n
}

// BulletPos, EnemyPos and ItemPos are position extractors for FillInstances
func BulletPos(b *Bullet) Vec2 { return b.Pos }
func EnemyPos(e *Enemy) Vec2   { return e.Pos }
func ItemPos(it *Item) Vec2    { return it.Pos }
