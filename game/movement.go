package game

// passedThrough reports an entity that is close to the player and already moving away
// from it. The dot product is deliberately not normalized.
func passedThrough(pos, vel, player Vec2, threshold2 float64) bool {
	d := pos.Sub(player)
	return d.Len2() < threshold2 && d.Dot(vel) > 0
}

// outOfRange reports an entity that has left the play volume
func outOfRange(pos, player Vec2, max2 float64) bool {
	return pos.Sub(player).Len2() >= max2
}

// MovementSystem integrates positions and culls whatever leaves the play volume
type MovementSystem struct {
	cfg *Config
}

// NewMovementSystem creates a movement system
func NewMovementSystem(cfg *Config) *MovementSystem {
	return &MovementSystem{cfg: cfg}
}

// EnemySpeed returns the enemy speed for a wave
func (m *MovementSystem) EnemySpeed(wave int) float64 {
	return m.cfg.EnemySpeed + m.cfg.EnemySpeedPerWave*float64(wave-1)
}

// MoveBullets advances bullets and removes the ones out of range
func (m *MovementSystem) MoveBullets(w *World, dt float64) {
	max2 := m.cfg.MaxObjectDistance * m.cfg.MaxObjectDistance
	player := w.Player
	w.Bullets.Compact(func(b *Bullet) bool {
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		return !outOfRange(b.Pos, player, max2)
	})
}

// MoveEnemies advances enemies at the wave speed. Enemies slipping past the player are
// removed and returned as escape damage; enemies out of range are removed silently.
func (m *MovementSystem) MoveEnemies(w *World, dt float64, wave int) (escaped int) {
	max2 := m.cfg.MaxObjectDistance * m.cfg.MaxObjectDistance
	pass2 := m.cfg.PassThroughThreshold * m.cfg.PassThroughThreshold
	step := m.EnemySpeed(wave) * dt
	player := w.Player
	w.Enemies.Compact(func(e *Enemy) bool {
		e.Pos = e.Pos.Add(e.Vel.Scale(step))
		if passedThrough(e.Pos, e.Vel, player, pass2) {
			escaped++
			return false
		}
		return !outOfRange(e.Pos, player, max2)
	})
	return escaped
}

// MoveItems advances items. Missed items vanish without penalty.
func (m *MovementSystem) MoveItems(w *World, dt float64) {
	max2 := m.cfg.MaxObjectDistance * m.cfg.MaxObjectDistance
	pass2 := m.cfg.PassThroughThreshold * m.cfg.PassThroughThreshold
	step := m.cfg.ItemSpeed * dt
	player := w.Player
	w.Items.Compact(func(it *Item) bool {
		it.Pos = it.Pos.Add(it.Vel.Scale(step))
		if passedThrough(it.Pos, it.Vel, player, pass2) {
			return false
		}
		return !outOfRange(it.Pos, player, max2)
	})
}
