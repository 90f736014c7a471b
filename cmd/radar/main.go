// Command radar plays the wave shooter in a terminal, drawn as a radar around the ship.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"waveshooter/config"
	"waveshooter/game"
	"waveshooter/gamelog"
	"waveshooter/leaderboard"
	"waveshooter/sound"
)

// Terminals only report presses and auto-repeat, so a key counts as held for a short
// while after its last event.
const holdFor = 180 * time.Millisecond

type pilot struct {
	pos     game.Vec2
	heading float64
	held    map[rune]time.Time
}

func newPilot() *pilot {
	return &pilot{held: make(map[rune]time.Time)}
}

func (p *pilot) press(r rune, now time.Time) { p.held[r] = now }

func (p *pilot) down(r rune, now time.Time) bool {
	t, ok := p.held[r]
	return ok && now.Sub(t) < holdFor
}

func (p *pilot) forward() game.Vec2 {
	return game.Vec2{X: math.Sin(p.heading), Z: -math.Cos(p.heading)}
}

// step moves the ship for dt seconds at 6 u/s, turning at 2.2 rad/s
func (p *pilot) step(now time.Time, dt float64) game.Input {
	if p.down('q', now) {
		p.heading -= 2.2 * dt
	}
	if p.down('e', now) {
		p.heading += 2.2 * dt
	}
	fwd := p.forward()
	var move game.Vec2
	if p.down('w', now) {
		move = move.Add(fwd)
	}
	if p.down('s', now) {
		move = move.Sub(fwd)
	}
	if p.down('d', now) {
		move = move.Add(fwd.Right())
	}
	if p.down('a', now) {
		move = move.Sub(fwd.Right())
	}
	if dir, ok := move.Normalized(); ok {
		p.pos = p.pos.Add(dir.Scale(6 * dt))
	}
	return game.Input{Position: p.pos, Forward: fwd}
}

func (p *pilot) reset() {
	p.pos = game.Vec2{}
	p.heading = 0
	clear(p.held)
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	name := flag.String("name", config.String("WAVESHOOTER_PLAYER", game.DefaultPlayerName), "name recorded on the leaderboard")
	scores := flag.String("scores", config.String("WAVESHOOTER_SCORES", "file:scores.json"), "leaderboard DSN")
	logPath := flag.String("log", config.String("WAVESHOOTER_LOG", ""), "write logs to this file; logs are discarded otherwise")
	volume := flag.Float64("volume", 0, "master volume, 0 mutes")
	flag.Parse()

	// the terminal belongs to tcell, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := gamelog.NewText(logOut, slog.LevelDebug)

	store, closer, err := leaderboard.Open(*scores)
	if err != nil {
		log.Fatalf("Failed to open leaderboard: %v", err)
	}
	defer closer.Close()

	g := game.NewGame(game.Options{Logger: logger, Store: store, PlayerName: *name})

	var audio *sound.Manager
	if *volume > 0 {
		audio = sound.NewManager(*volume, logger)
		if err := audio.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
			audio = nil
		} else {
			defer audio.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, g, audio)
}

func run(screen tcell.Screen, g *game.Game, audio *sound.Manager) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	p := newPilot()
	last := time.Now()
	var flashUntil time.Time
	damage := 0

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Key() == tcell.KeyEnter:
					if g.UI().Status != game.StatusPlaying {
						p.reset()
						g.Start()
					}
				case ev.Key() == tcell.KeyLeft:
					p.press('q', time.Now())
				case ev.Key() == tcell.KeyRight:
					p.press('e', time.Now())
				case ev.Key() == tcell.KeyRune:
					p.press(ev.Rune(), time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			frame := g.Tick(dt, p.step(now, min(dt, g.Config().MaxTickDelta)))
			if audio != nil && len(frame.Events) > 0 {
				audio.Handle(frame.Events)
			}
			if frame.UI.DamageTaken > damage {
				flashUntil = now.Add(250 * time.Millisecond)
			}
			damage = frame.UI.DamageTaken
			drawWorld(screen, g, now.Before(flashUntil))
		}
	}
}
