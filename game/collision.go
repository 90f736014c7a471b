package game

// pending accumulates a frame's UI-visible changes; they are committed once at the end
// of the tick.
type pending struct {
	score  int
	hpLoss int
	hpGain int

	pattern        Pattern
	patternChanged bool

	speedLevel   int
	speedChanged bool

	wave int
}

func (p *pending) reset(ui *UIState) {
	*p = pending{pattern: ui.Pattern, speedLevel: ui.SpeedLevel, wave: ui.Wave}
}

// CollisionSystem resolves overlaps with squared-distance circle tests
type CollisionSystem struct {
	cfg *Config
}

// NewCollisionSystem creates a collision system
func NewCollisionSystem(cfg *Config) *CollisionSystem {
	return &CollisionSystem{cfg: cfg}
}

func (c *CollisionSystem) radius2() float64 {
	return c.cfg.CollisionDistance * c.cfg.CollisionDistance
}

// BulletsVsEnemies lets each bullet hit the first overlapping live enemy in pool order.
// The bullet is consumed; an enemy reaching zero hp is reported to onKill. Both pools are
// compacted once after every pair has been tested.
func (c *CollisionSystem) BulletsVsEnemies(w *World, onKill func(e *Enemy)) {
	r2 := c.radius2()
	bullets := w.Bullets.Live()
	enemies := w.Enemies.Live()
	if len(bullets) == 0 || len(enemies) == 0 {
		return
	}

	for i := range bullets {
		for j := range enemies {
			if w.deadEnemies[j] {
				continue
			}
			if bullets[i].Pos.Sub(enemies[j].Pos).Len2() >= r2 {
				continue
			}
			w.deadBullets[i] = true
			enemies[j].HP--
			if enemies[j].HP <= 0 {
				enemies[j].HP = 0
				w.deadEnemies[j] = true
				onKill(&enemies[j])
			}
			break
		}
	}

	w.Bullets.RemoveMarked(w.deadBullets)
	w.Enemies.RemoveMarked(w.deadEnemies)
}

// PlayerVsEnemies removes every enemy touching the player and returns the damage dealt
func (c *CollisionSystem) PlayerVsEnemies(w *World) (damage int) {
	r2 := c.radius2()
	player := w.Player
	w.Enemies.Compact(func(e *Enemy) bool {
		if player.Sub(e.Pos).Len2() < r2 {
			damage++
			return false
		}
		return true
	})
	return damage
}

// PlayerVsItems removes every item touching the player and folds its effect into p.
// collected is called once per item.
func (c *CollisionSystem) PlayerVsItems(w *World, ui *UIState, p *pending, collected func(it *Item)) {
	r2 := c.radius2()
	player := w.Player
	w.Items.Compact(func(it *Item) bool {
		if player.Sub(it.Pos).Len2() >= r2 {
			return true
		}
		c.applyItem(it.Type, ui, p)
		collected(it)
		return false
	})
}

func (c *CollisionSystem) applyItem(t ItemType, ui *UIState, p *pending) {
	switch t {
	case ItemGrow:
		if p.pattern.Full() {
			p.score += c.cfg.BonusScore
			return
		}
		p.pattern = p.pattern.Grow()
		p.patternChanged = true
	case ItemShrink:
		p.pattern = p.pattern.Shrink()
		p.patternChanged = true
	case ItemSpeed:
		if p.speedLevel >= len(c.cfg.SpeedMultipliers)-1 {
			p.score += c.cfg.BonusScore
			return
		}
		p.speedLevel++
		p.speedChanged = true
	case ItemHeal:
		// Several heals in one frame still restore at most one point
		p.hpGain = max(0, min(1, c.cfg.InitialHP-ui.HP))
	}
}
