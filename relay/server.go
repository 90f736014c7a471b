// Package relay serves the game to browser hosts over websockets. Every connection gets
// its own room with its own simulation; rooms only share the leaderboard store.
package relay

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"waveshooter/game"
	"waveshooter/gamelog"
	"waveshooter/leaderboard"
)

// Config tunes the relay
type Config struct {
	// TickInterval is the simulation step of every room
	TickInterval time.Duration
	// SnapshotEvery sends the pools every N ticks while playing
	SnapshotEvery int
	InboxSize     int
	SendBuffer    int
	ReadLimit     int64
	WriteWait     time.Duration
	PongWait      time.Duration
	PingPeriod    time.Duration
	// Game is copied into every room; nil means game.DefaultConfig
	Game *game.Config
}

// DefaultConfig returns 60 Hz rooms with 30 Hz snapshots
func DefaultConfig() Config {
	return Config{
		TickInterval:  time.Second / 60,
		SnapshotEvery: 2,
		InboxSize:     64,
		SendBuffer:    256,
		ReadLimit:     1 << 16,
		WriteWait:     10 * time.Second,
		PongWait:      60 * time.Second,
		PingPeriod:    25 * time.Second,
	}
}

// Server upgrades connections and runs their rooms
type Server struct {
	cfg      Config
	store    leaderboard.Store
	log      gamelog.Logger
	upgrader websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	rooms map[string]*Room
}

// NewServer creates a relay. store may be nil, in which case each room keeps its own
// in-memory board.
func NewServer(cfg Config, store leaderboard.Store, log gamelog.Logger) *Server {
	if log == nil {
		log = gamelog.Nop()
	}
	if cfg.SnapshotEvery <= 0 {
		cfg.SnapshotEvery = 1
	}
	if store != nil {
		if _, ok := store.(*leaderboard.LockedStore); !ok {
			store = leaderboard.NewLocked(store)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		cfg:   cfg,
		store: store,
		log:   log,
		upgrader: websocket.Upgrader{
			// Browser hosts are served from anywhere during development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		ctx:    ctx,
		cancel: cancel,
		rooms:  make(map[string]*Room),
	}
}

// ServeHTTP upgrades the request. Query parameters: codec=json|msgpack, name=<player>.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	codec, err := CodecFor(r.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "err", err)
		return
	}

	id := uuid.NewString()
	log := gamelog.With(s.log, "session", id)
	g := game.NewGame(game.Options{
		Config:     s.cfg.Game,
		Logger:     log,
		Store:      s.store,
		PlayerName: r.URL.Query().Get("name"),
	})
	room := newRoom(id, s.cfg, conn, codec, g, log)

	s.mu.Lock()
	s.rooms[id] = room
	s.mu.Unlock()
	log.Info("room opened", "codec", codec.Name(), "remote", r.RemoteAddr)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		room.Run(s.ctx)

		s.mu.Lock()
		delete(s.rooms, id)
		s.mu.Unlock()
		log.Info("room closed")
	}()
}

// Rooms returns the number of open rooms
func (s *Server) Rooms() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

// Close stops every room and waits for them
func (s *Server) Close() {
	s.cancel()
	s.wg.Wait()
}
