package game

import (
	"math"
	"math/rand"
)

// idSource hands out EntityIDs in increasing order
type idSource struct {
	last EntityID
}

func (s *idSource) Next() EntityID {
	s.last++
	return s.last
}

// SpawnScheduler drives the difficulty curve: shorter enemy intervals and larger groups
// as the session goes on, plus randomly timed power-ups.
type SpawnScheduler struct {
	cfg *Config
	rng *rand.Rand
}

// NewSpawnScheduler creates a scheduler drawing from rng
func NewSpawnScheduler(cfg *Config, rng *rand.Rand) *SpawnScheduler {
	return &SpawnScheduler{cfg: cfg, rng: rng}
}

// Wave returns the difficulty tier for elapsed seconds, starting at 1
func (s *SpawnScheduler) Wave(elapsed float64) int {
	return int(math.Floor(elapsed/s.cfg.WaveLength)) + 1
}

// EnemyInterval returns the seconds between enemy spawn events
func (s *SpawnScheduler) EnemyInterval(elapsed float64) float64 {
	tiers := math.Floor(elapsed / s.cfg.WaveLength)
	return math.Max(s.cfg.SpawnIntervalMin, s.cfg.SpawnIntervalInitial-tiers*s.cfg.SpawnIntervalStep)
}

// EnemyCount returns the size of a spawn event. It rises by one every scale interval,
// sometimes adds one more, and is capped.
func (s *SpawnScheduler) EnemyCount(elapsed float64) int {
	base := s.cfg.BaseEnemiesPerWave + int(math.Floor(elapsed/s.cfg.EnemyCountScaleInterval))
	return min(base+s.rng.Intn(2), s.cfg.MaxEnemiesPerSpawn)
}

// NextItemInterval rolls the delay before the next item
func (s *SpawnScheduler) NextItemInterval() float64 {
	return s.cfg.ItemSpawnMin + s.rng.Float64()*(s.cfg.ItemSpawnMax-s.cfg.ItemSpawnMin)
}

// ItemTypeFor maps a uniform roll in [0,1) onto the item distribution:
// 40% grow, 30% speed, 20% heal, 10% shrink.
func ItemTypeFor(roll float64) ItemType {
	switch {
	case roll < 0.4:
		return ItemGrow
	case roll < 0.7:
		return ItemSpeed
	case roll < 0.9:
		return ItemHeal
	default:
		return ItemShrink
	}
}

// jitter returns a uniform offset in [-width/2, width/2)
func (s *SpawnScheduler) jitter(width float64) float64 {
	return (s.rng.Float64() - 0.5) * width
}

// SpawnEnemies places one group ahead of the player, heading back along the forward axis.
// Enemies that do not fit in the pool are dropped. It returns how many were placed.
func (s *SpawnScheduler) SpawnEnemies(w *World, elapsed float64, ids *idSource) int {
	count := s.EnemyCount(elapsed)
	ahead := w.Player.Add(w.Forward.Scale(s.cfg.SpawnDistance))
	vel := w.Forward.Scale(-1)

	placed := 0
	for i := 0; i < count; i++ {
		pos := Vec2{
			X: ahead.X + s.jitter(s.cfg.EnemyJitterX),
			Z: ahead.Z + s.jitter(s.cfg.EnemyJitterZ),
		}
		if w.Enemies.Full() {
			continue
		}
		w.Enemies.Add(Enemy{ID: ids.Next(), Pos: pos, Vel: vel, HP: 1})
		placed++
	}
	return placed
}

// SpawnItem places one randomly typed item ahead of the player. It reports false when
// that type is already at its cap.
func (s *SpawnScheduler) SpawnItem(w *World, ids *idSource) bool {
	t := ItemTypeFor(s.rng.Float64())
	ahead := w.Player.Add(w.Forward.Scale(s.cfg.SpawnDistance))
	pos := Vec2{
		X: ahead.X + s.jitter(s.cfg.ItemJitterX),
		Z: ahead.Z + s.jitter(s.cfg.ItemJitterZ),
	}
	if w.itemCount(t) >= s.cfg.MaxItemsPerType || w.Items.Full() {
		return false
	}
	return w.Items.Add(Item{ID: ids.Next(), Pos: pos, Vel: w.Forward.Scale(-1), Type: t})
}
