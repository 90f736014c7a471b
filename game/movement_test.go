package game

import "testing"

func newTestWorld(t *testing.T) (*World, *Config) {
	t.Helper()
	cfg := DefaultConfig()
	return NewWorld(&cfg), &cfg
}

func TestBulletsCulledAtMaxRange(t *testing.T) {
	w, cfg := newTestWorld(t)
	m := NewMovementSystem(cfg)
	w.Bullets.Add(Bullet{ID: 1, Pos: Vec2{0, -29.9}, Vel: Vec2{0, -15}})
	w.Bullets.Add(Bullet{ID: 2, Pos: Vec2{0, -1}, Vel: Vec2{0, -15}})

	m.MoveBullets(w, 0.1)

	if w.Bullets.Len() != 1 || w.Bullets.Live()[0].ID != 2 {
		t.Fatalf("bullets = %+v, want only id 2", w.Bullets.Live())
	}
	if got := w.Bullets.Live()[0].Pos.Z; got != -2.5 {
		t.Fatalf("z = %v, want -2.5", got)
	}
}

func TestEnemyOutOfRangeRemovedWithoutDamage(t *testing.T) {
	w, cfg := newTestWorld(t)
	m := NewMovementSystem(cfg)
	w.Enemies.Add(Enemy{ID: 1, Pos: Vec2{0, 29.99}, Vel: Vec2{0, 1}, HP: 1})

	escaped := m.MoveEnemies(w, 0.1, 1)

	if escaped != 0 {
		t.Fatalf("escaped = %d, want 0", escaped)
	}
	if w.Enemies.Len() != 0 {
		t.Fatalf("enemy beyond range was kept")
	}
}

func TestEnemyPassingPlayerDealsEscapeDamage(t *testing.T) {
	w, cfg := newTestWorld(t)
	m := NewMovementSystem(cfg)
	w.Enemies.Add(Enemy{ID: 1, Pos: Vec2{0, 0.5}, Vel: Vec2{0, 1}, HP: 1})
	w.Enemies.Add(Enemy{ID: 2, Pos: Vec2{0, -10}, Vel: Vec2{0, 1}, HP: 1})

	escaped := m.MoveEnemies(w, 0.01, 1)

	if escaped != 1 {
		t.Fatalf("escaped = %d, want 1", escaped)
	}
	if w.Enemies.Len() != 1 || w.Enemies.Live()[0].ID != 2 {
		t.Fatalf("enemies = %+v, want only the approaching one", w.Enemies.Live())
	}
}

func TestEnemySpeedScalesWithWave(t *testing.T) {
	w, cfg := newTestWorld(t)
	m := NewMovementSystem(cfg)
	w.Enemies.Add(Enemy{ID: 1, Pos: Vec2{0, -20}, Vel: Vec2{0, 1}, HP: 1})

	m.MoveEnemies(w, 1, 3)

	want := -20 + 2.4 + 0.2
	if got := w.Enemies.Live()[0].Pos.Z; got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("z = %v, want %v", got, want)
	}
}

func TestItemPassingPlayerIsSilent(t *testing.T) {
	w, cfg := newTestWorld(t)
	m := NewMovementSystem(cfg)
	w.Items.Add(Item{ID: 1, Pos: Vec2{0, 1}, Vel: Vec2{0, 1}, Type: ItemHeal})
	w.Items.Add(Item{ID: 2, Pos: Vec2{0, -20}, Vel: Vec2{0, 1}, Type: ItemGrow})

	m.MoveItems(w, 0.01)

	if w.Items.Len() != 1 || w.Items.Live()[0].ID != 2 {
		t.Fatalf("items = %+v, want only id 2", w.Items.Live())
	}
}

func TestPassThroughUsesPlayerPosition(t *testing.T) {
	player := Vec2{10, 10}
	if passedThrough(Vec2{10, 9}, Vec2{0, 1}, player, 9) {
		t.Fatalf("approaching entity reported as passed")
	}
	if !passedThrough(Vec2{10, 11}, Vec2{0, 1}, player, 9) {
		t.Fatalf("receding entity not reported as passed")
	}
	if passedThrough(Vec2{10, 14}, Vec2{0, 1}, player, 9) {
		t.Fatalf("receding entity outside the threshold reported as passed")
	}
	if !outOfRange(Vec2{10, 40}, player, 900) || outOfRange(Vec2{10, 39}, player, 900) {
		t.Fatalf("outOfRange boundary wrong")
	}
}
