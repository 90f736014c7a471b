package game

// fire spawns one bullet per pattern lane when the shot interval has elapsed. Lanes are
// spread along the player's right axis and all share the forward velocity. Bullets that
// do not fit in the pool are dropped.
func (g *Game) fire(elapsed float64) {
	w := g.world
	if elapsed-w.lastShot < g.cfg.ShotInterval {
		return
	}
	w.lastShot = elapsed

	g.offsets = g.ui.Pattern.Offsets(g.cfg.PatternSpacing, g.offsets[:0])
	right := w.Forward.Right()
	vel := w.Forward.Scale(g.cfg.BulletSpeed * g.ui.SpeedMultiplier)
	for _, off := range g.offsets {
		if !w.Bullets.Add(Bullet{ID: g.ids.Next(), Pos: w.Player.Add(right.Scale(off)), Vel: vel}) {
			break
		}
	}
	g.emit(Event{Kind: EventShot, Pos: w.Player})
}
