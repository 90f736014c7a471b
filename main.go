package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"waveshooter/config"
	"waveshooter/game"
	"waveshooter/gamelog"
	"waveshooter/host"
	"waveshooter/leaderboard"
	"waveshooter/sound"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	configPath := flag.String("config", config.String("WAVESHOOTER_CONFIG", ""), "JSON file overriding gameplay constants")
	name := flag.String("name", config.String("WAVESHOOTER_PLAYER", game.DefaultPlayerName), "name recorded on the leaderboard")
	scores := flag.String("scores", config.String("WAVESHOOTER_SCORES", "file:scores.json"), "leaderboard DSN (mem:, file:PATH, sqlite:PATH, convex:URL)")
	volume := flag.Float64("volume", config.Float("WAVESHOOTER_VOLUME", 0.6), "master volume, 0 mutes")
	profileFPS := flag.Float64("profile-below-fps", 0, "capture a CPU profile and trace when FPS drops below this value")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := gamelog.NewText(os.Stderr, level)

	cfg := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	store, closer, err := leaderboard.Open(*scores)
	if err != nil {
		log.Fatalf("Failed to open leaderboard: %v", err)
	}
	defer closer.Close()

	g := game.NewGame(game.Options{
		Config:     &cfg,
		Logger:     gamelog.With(logger, "component", "game"),
		Store:      store,
		PlayerName: *name,
	})

	var sink host.EventSink
	if *volume > 0 {
		audio := sound.NewManager(*volume, gamelog.With(logger, "component", "sound"))
		if err := audio.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer audio.Close()
			sink = audio
		}
	}

	hostCfg := host.DefaultConfig()
	hostCfg.ProfileBelowFPS = *profileFPS
	h := host.New(hostCfg, g, sink, gamelog.With(logger, "component", "host"))

	ebiten.SetWindowSize(hostCfg.ScreenWidth, hostCfg.ScreenHeight)
	ebiten.SetWindowTitle("Wave Shooter")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(h); err != nil {
		log.Fatal(err)
	}
}
