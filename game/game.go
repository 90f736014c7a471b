// Package game is the simulation core of the wave shooter. It owns entity pools, collision,
// scoring, spawning and the session lifecycle, and knows nothing about rendering, audio or
// input devices: hosts feed it a player pose every frame and draw what it returns.
package game

import (
	"math"
	"math/rand"
	"slices"
	"time"

	"waveshooter/gamelog"
	"waveshooter/leaderboard"
)

// DefaultPlayerName is recorded on the leaderboard when the host supplies no name
const DefaultPlayerName = "Player"

// Input is the player pose resolved by the host for one frame
type Input struct {
	Position Vec2
	// Forward is the heading on the ground plane. It is normalized by the game; a zero
	// vector keeps the previous heading.
	Forward Vec2
}

// Frame is the outcome of one tick
type Frame struct {
	UI UIState
	// Changed is set when UI differs from the previously published state
	Changed bool
	// Events is only valid until the next call into the Game
	Events []Event
}

// Options configures a Game. Zero values pick sensible defaults.
type Options struct {
	Config     *Config
	Now        func() time.Time
	Rand       *rand.Rand
	Logger     gamelog.Logger
	Store      leaderboard.Store
	PlayerName string
	// OnPublish receives the UI state whenever it changes
	OnPublish func(UIState)
}

// Game runs one player's session. It is not safe for concurrent use.
type Game struct {
	cfg       Config
	world     *World
	movement  *MovementSystem
	collision *CollisionSystem
	spawner   *SpawnScheduler
	ids       idSource

	ui    UIState
	dirty bool
	pend  pending

	events    eventBuffer
	delivered bool
	offsets   []float64

	start    time.Time
	frameNow time.Time
	now      func() time.Time

	log        gamelog.Logger
	store      leaderboard.Store
	playerName string
	onPublish  func(UIState)

	board     leaderboard.Board
	lastEntry leaderboard.Entry

	// bound once so the per-frame callbacks do not allocate
	killFn    func(*Enemy)
	collectFn func(*Item)
}

// NewGame creates a game waiting in the start state
func NewGame(opts Options) *Game {
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
		cfg.SpeedMultipliers = slices.Clone(cfg.SpeedMultipliers)
	}
	ClampConfig(&cfg)

	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = gamelog.Nop()
	}
	if opts.PlayerName == "" {
		opts.PlayerName = DefaultPlayerName
	}

	g := &Game{
		cfg:        cfg,
		now:        opts.Now,
		log:        opts.Logger,
		store:      opts.Store,
		playerName: opts.PlayerName,
		onPublish:  opts.OnPublish,
		events:     newEventBuffer(),
		offsets:    make([]float64, 0, MaxColumns),
	}
	g.world = NewWorld(&g.cfg)
	g.movement = NewMovementSystem(&g.cfg)
	g.collision = NewCollisionSystem(&g.cfg)
	g.spawner = NewSpawnScheduler(&g.cfg, opts.Rand)
	g.killFn = g.registerKill
	g.collectFn = g.registerPowerUp
	g.ui = defaultUI(&g.cfg, StatusStart)
	g.world.reset(g.spawner.NextItemInterval())

	if g.store != nil {
		board, err := leaderboard.Load(g.store)
		if err != nil {
			g.log.Warn("leaderboard unavailable", "error", err)
		}
		g.board = board
	}
	return g
}

// Config returns the effective configuration
func (g *Game) Config() Config { return g.cfg }

// UI returns the current HUD state
func (g *Game) UI() UIState { return g.ui }

// World exposes the pools for renderers. Callers must not mutate it.
func (g *Game) World() *World { return g.world }

// Leaderboard returns the board as of the last read or write
func (g *Game) Leaderboard() leaderboard.Board { return g.board }

// LastEntry returns the entry recorded at the end of the previous session
func (g *Game) LastEntry() leaderboard.Entry { return g.lastEntry }

// PlayerName returns the name recorded on the leaderboard
func (g *Game) PlayerName() string { return g.playerName }

// SetPlayerName changes the name used for the next leaderboard entry
func (g *Game) SetPlayerName(name string) {
	if name == "" {
		name = DefaultPlayerName
	}
	g.playerName = name
}

// Tick advances the simulation by dt seconds. Outside the playing state it does nothing.
// Movement integrates dt clamped to MaxTickDelta, so after a host stall entities lag behind
// while the countdown, auto-fire and spawn timers follow the injected clock.
func (g *Game) Tick(dt float64, in Input) Frame {
	g.beginEvents()
	defer func() { g.delivered = true }()

	if g.ui.Status != StatusPlaying {
		return g.frame(false)
	}

	if !(dt >= 0) {
		dt = 0
	}
	dt = min(dt, g.cfg.MaxTickDelta)

	w := g.world
	w.Player = in.Position
	if f, ok := in.Forward.Normalized(); ok {
		w.Forward = f
	}

	now := g.now()
	g.frameNow = now
	elapsed := now.Sub(g.start).Seconds()
	timeLeft := int(math.Max(0, math.Ceil(g.cfg.GameDuration-elapsed)))

	if g.ui.HP <= 0 || timeLeft <= 0 {
		g.endGame(now)
		return g.frame(true)
	}

	prev := g.ui
	g.pend.reset(&g.ui)

	g.fire(elapsed)

	g.movement.MoveBullets(w, dt)
	escaped := g.movement.MoveEnemies(w, dt, g.ui.Wave)
	g.movement.MoveItems(w, dt)

	g.collision.BulletsVsEnemies(w, g.killFn)
	touched := g.collision.PlayerVsEnemies(w)
	g.collision.PlayerVsItems(w, &g.ui, &g.pend, g.collectFn)

	if elapsed-w.lastEnemySpawn >= g.spawner.EnemyInterval(elapsed) {
		w.lastEnemySpawn = elapsed
		g.spawner.SpawnEnemies(w, elapsed, &g.ids)
		g.pend.wave = g.spawner.Wave(elapsed)
	}
	if elapsed-w.lastItemSpawn >= w.nextItemInterval {
		w.lastItemSpawn = elapsed
		w.nextItemInterval = g.spawner.NextItemInterval()
		g.spawner.SpawnItem(w, &g.ids)
	}

	duration := g.cfg.HitEffectDuration
	w.ageEffects(dt, duration)
	w.pruneLabels(now, time.Duration(duration*float64(time.Second)))

	g.commit(escaped+touched, timeLeft)
	return g.frame(!g.ui.equal(prev))
}

// commit folds the frame's pending deltas into the UI state
func (g *Game) commit(hpLoss, timeLeft int) {
	p := &g.pend
	if hpLoss > 0 {
		g.emit(Event{Kind: EventDamage, Pos: g.world.Player, Amount: hpLoss})
		g.ui.DamageTaken++
	}
	g.ui.Score += p.score
	g.ui.HP = max(0, min(g.cfg.InitialHP, g.ui.HP-hpLoss+p.hpGain))
	g.ui.TimeLeft = timeLeft
	g.ui.Wave = p.wave
	if p.patternChanged {
		g.ui.Pattern = p.pattern
	}
	if p.speedChanged {
		g.ui.SpeedLevel = p.speedLevel
		g.ui.SpeedMultiplier = g.cfg.SpeedMultipliers[p.speedLevel]
	}
}

func (g *Game) frame(changed bool) Frame {
	changed = changed || g.dirty
	g.dirty = false
	if changed && g.onPublish != nil {
		g.onPublish(g.ui)
	}
	return Frame{UI: g.ui, Changed: changed, Events: g.events.buf}
}

func (g *Game) registerKill(e *Enemy) {
	w := g.world
	chain := w.chain.RegisterKill(g.frameNow)
	g.pend.score += g.cfg.KillScore * chain
	w.Effects.Add(HitEffect{ID: g.ids.Next(), Pos: e.Pos, Chain: chain})
	w.Labels.Add(ChainLabel{ID: g.ids.Next(), Pos: e.Pos, Chain: chain, Max: chain >= g.cfg.ChainMax, Created: g.frameNow})
	g.emit(Event{Kind: EventKill, Pos: e.Pos, Chain: chain})
}

func (g *Game) registerPowerUp(it *Item) {
	g.emit(Event{Kind: EventPowerUp, Pos: it.Pos, Item: it.Type})
}

// beginEvents drops the events handed out by the previous frame
func (g *Game) beginEvents() {
	if g.delivered {
		g.events.reset()
		g.delivered = false
	}
}

func (g *Game) emit(e Event) {
	g.beginEvents()
	g.events.push(e)
}
