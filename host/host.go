// Package host runs a game.Game inside an ebiten window: keyboard controls, a top-down
// camera, the HUD and optional sound.
package host

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"waveshooter/game"
	"waveshooter/gamelog"
)

// EventSink consumes the events of each frame
type EventSink interface {
	Handle(events []game.Event)
}

// Config holds window and feel settings for the host
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	// Zoom is pixels per world unit
	Zoom float64
	// CameraFollow is the fraction of the distance to the player covered each frame
	CameraFollow float64
	// ProfileBelowFPS triggers a profile capture; 0 disables profiling
	ProfileBelowFPS float64
	ProfilesDir     string
}

// DefaultConfig returns the default host configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		Zoom:         11,
		CameraFollow: 0.15,
		ProfilesDir:  "profiles",
	}
}

// Host implements ebiten.Game
type Host struct {
	cfg      Config
	game     *game.Game
	controls *Controls
	camera   *Camera
	renderer *Renderer
	hud      *HUD
	sink     EventSink
	profiler *Profiler
	log      gamelog.Logger

	lastUpdateTime time.Time
	startTime      time.Time

	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64
}

// New creates a host for g. sink may be nil.
func New(cfg Config, g *game.Game, sink EventSink, log gamelog.Logger) *Host {
	if log == nil {
		log = gamelog.Nop()
	}
	camera := NewCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight), cfg.Zoom)
	now := time.Now()
	return &Host{
		cfg:            cfg,
		game:           g,
		controls:       NewControls(),
		camera:         camera,
		renderer:       NewRenderer(camera, g.Config()),
		hud:            NewHUD(camera),
		sink:           sink,
		profiler:       NewProfiler(cfg.ProfilesDir, log),
		log:            log,
		lastUpdateTime: now,
		startTime:      now,
		fps:            60,
	}
}

// Update polls the keyboard and advances the simulation
func (h *Host) Update() error {
	now := time.Now()
	dt := now.Sub(h.lastUpdateTime).Seconds()
	h.lastUpdateTime = now

	keys := h.controls.Poll()
	if keys.Confirm && h.game.UI().Status != game.StatusPlaying {
		h.controls.Reset()
		h.game.Start()
	}

	in := h.controls.Step(keys, min(dt, h.game.Config().MaxTickDelta))
	if h.game.UI().Status != game.StatusPlaying {
		// keep the ship parked between sessions
		h.controls.Reset()
		in = game.Input{Forward: h.controls.Forward()}
	}
	frame := h.game.Tick(dt, in)
	if h.sink != nil && len(frame.Events) > 0 {
		h.sink.Handle(frame.Events)
	}

	h.camera.Follow(h.game.World().Player, h.cfg.CameraFollow)
	h.trackFPS(now, dt)
	h.hud.Update(frame.UI, dt, h.fps)
	return nil
}

func (h *Host) trackFPS(now time.Time, dt float64) {
	h.fpsUpdateTimer += dt
	h.fpsUpdateCounter++
	if h.fpsUpdateTimer < 0.5 {
		return
	}
	h.fps = float64(h.fpsUpdateCounter) / h.fpsUpdateTimer
	h.fpsUpdateCounter = 0
	h.fpsUpdateTimer = 0

	if h.cfg.ProfileBelowFPS <= 0 || h.fps >= h.cfg.ProfileBelowFPS || now.Sub(h.startTime) < 3*time.Second {
		return
	}
	w := h.game.World()
	reason := fmt.Sprintf("fps%.0f-enemies%d-bullets%d", h.fps, w.Enemies.Len(), w.Bullets.Len())
	if err := h.profiler.CaptureProfile(reason); err == nil {
		h.log.Warn("fps drop, capturing profile", "fps", h.fps)
	}
}

// Draw renders the world and the HUD
func (h *Host) Draw(screen *ebiten.Image) {
	h.renderer.Render(screen, h.game.World(), h.game.Config())
	h.hud.Draw(screen, h.game)
}

// Layout keeps a fixed logical resolution
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.cfg.ScreenWidth, h.cfg.ScreenHeight
}
