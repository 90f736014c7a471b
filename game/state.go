package game

import (
	"fmt"
	"math"
	"time"
)

// Status is the lifecycle phase
type Status int

const (
	StatusStart Status = iota
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "start":
		*s = StatusStart
	case "playing":
		*s = StatusPlaying
	case "gameover":
		*s = StatusGameOver
	default:
		return fmt.Errorf("invalid status %q", text)
	}
	return nil
}

// UIState is the HUD-facing snapshot. It is republished only when one of its fields changes.
type UIState struct {
	Status          Status  `json:"status" msgpack:"status"`
	Score           int     `json:"score" msgpack:"score"`
	HP              int     `json:"hp" msgpack:"hp"`
	TimeLeft        int     `json:"timeLeft" msgpack:"timeLeft"`
	Wave            int     `json:"wave" msgpack:"wave"`
	Pattern         Pattern `json:"bulletPattern" msgpack:"bulletPattern"`
	DamageTaken     int     `json:"damageTakenCount" msgpack:"damageTakenCount"`
	SpeedLevel      int     `json:"speedLevel" msgpack:"speedLevel"`
	SpeedMultiplier float64 `json:"bulletSpeedMultiplier" msgpack:"bulletSpeedMultiplier"`
}

func (u UIState) equal(o UIState) bool {
	return u.Status == o.Status &&
		u.Score == o.Score &&
		u.HP == o.HP &&
		u.TimeLeft == o.TimeLeft &&
		u.Wave == o.Wave &&
		u.DamageTaken == o.DamageTaken &&
		u.SpeedLevel == o.SpeedLevel &&
		u.SpeedMultiplier == o.SpeedMultiplier &&
		u.Pattern.Equal(o.Pattern)
}

// defaultUI is the HUD at the top of a session
func defaultUI(cfg *Config, status Status) UIState {
	return UIState{
		Status:          status,
		HP:              cfg.InitialHP,
		TimeLeft:        int(cfg.GameDuration),
		Wave:            1,
		Pattern:         NewPattern(),
		SpeedMultiplier: cfg.SpeedMultipliers[0],
	}
}

// World is the hot per-frame state: pools, player pose and timers. It is mutated in place
// and never published directly.
type World struct {
	Bullets *Pool[Bullet]
	Enemies *Pool[Enemy]
	Items   *Pool[Item]
	Effects *Pool[HitEffect]
	Labels  *Pool[ChainLabel]

	Player  Vec2
	Forward Vec2

	// Timers are seconds since session start; neverFired until the first shot or spawn
	lastShot         float64
	lastEnemySpawn   float64
	lastItemSpawn    float64
	nextItemInterval float64

	chain ChainTracker

	// scratch marks for batch removal after bullet/enemy resolution
	deadBullets []bool
	deadEnemies []bool
}

// NewWorld preallocates every pool from cfg
func NewWorld(cfg *Config) *World {
	return &World{
		Bullets:     NewPool[Bullet](cfg.MaxBullets),
		Enemies:     NewPool[Enemy](cfg.MaxEnemies),
		Items:       NewPool[Item](cfg.MaxItemsPerType * int(itemTypeCount)),
		Effects:     NewPool[HitEffect](cfg.MaxHitEffects),
		Labels:      NewPool[ChainLabel](cfg.MaxChainLabels),
		Forward:     Vec2{0, -1},
		chain:       NewChainTracker(cfg.ChainWindow, cfg.ChainMax),
		deadBullets: make([]bool, cfg.MaxBullets),
		deadEnemies: make([]bool, cfg.MaxEnemies),
	}
}

// neverFired satisfies every interval check, so the first playing frame fires a volley
// and spawns an enemy batch and an item
var neverFired = math.Inf(-1)

// reset empties every pool and clears the timers. nextItem seeds the item delay; the
// first frame spawns an item regardless and rolls a fresh one.
func (w *World) reset(nextItem float64) {
	w.Bullets.Clear()
	w.Enemies.Clear()
	w.Items.Clear()
	w.Effects.Clear()
	w.Labels.Clear()
	w.Player = Vec2{}
	w.Forward = Vec2{0, -1}
	w.lastShot = neverFired
	w.lastEnemySpawn = neverFired
	w.lastItemSpawn = neverFired
	w.nextItemInterval = nextItem
	w.chain.Reset()
}

// Chain returns the current combo value, 0 before the first kill
func (w *World) Chain() int { return w.chain.Count() }

// itemCount counts live items of type t
func (w *World) itemCount(t ItemType) int {
	n := 0
	for _, it := range w.Items.Live() {
		if it.Type == t {
			n++
		}
	}
	return n
}

// pruneLabels drops chain labels older than maxAge on the wall clock
func (w *World) pruneLabels(now time.Time, maxAge time.Duration) {
	w.Labels.Compact(func(l *ChainLabel) bool {
		return now.Sub(l.Created) <= maxAge
	})
}

// ageEffects advances hit effects and drops the expired ones
func (w *World) ageEffects(dt, duration float64) {
	w.Effects.Compact(func(e *HitEffect) bool {
		e.Age += dt
		return e.Age < duration
	})
}
