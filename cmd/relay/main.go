package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waveshooter/config"
	"waveshooter/game"
	"waveshooter/gamelog"
	"waveshooter/leaderboard"
	"waveshooter/relay"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	addr := flag.String("addr", config.String("WAVESHOOTER_ADDR", ":8080"), "listen address")
	scores := flag.String("scores", config.String("WAVESHOOTER_SCORES", "sqlite:scores.db"), "leaderboard DSN")
	configPath := flag.String("config", config.String("WAVESHOOTER_CONFIG", ""), "JSON file overriding gameplay constants")
	tickRate := flag.Int("tick-rate", config.Int("WAVESHOOTER_TICK_RATE", 60), "simulation steps per second")
	snapshotEvery := flag.Int("snapshot-every", config.Int("WAVESHOOTER_SNAPSHOT_EVERY", 2), "send world snapshots every N ticks")
	flag.Parse()
	dsn := *scores

	logger := gamelog.NewText(os.Stderr, slog.LevelInfo)

	cfg := relay.DefaultConfig()
	if *tickRate > 0 {
		cfg.TickInterval = time.Second / time.Duration(*tickRate)
	}
	cfg.SnapshotEvery = *snapshotEvery
	if *configPath != "" {
		gc, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg.Game = &gc
	}

	store, closer, err := leaderboard.Open(dsn)
	if err != nil {
		log.Fatalf("Failed to open leaderboard: %v", err)
	}
	defer closer.Close()

	srv := relay.NewServer(cfg, store, logger)
	mux := http.NewServeMux()
	mux.Handle("/ws", srv)
	mux.HandleFunc("/scores", func(w http.ResponseWriter, r *http.Request) {
		b, err := leaderboard.Load(store)
		if err != nil && !errors.Is(err, leaderboard.ErrMalformed) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		text, err := b.Encode()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(text))
	})

	httpSrv := &http.Server{Addr: *addr, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		srv.Close()
	}()

	log.Printf("Relay listening on %s (ws endpoint: /ws, leaderboard: %s)", *addr, dsn)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	<-done
}
