package game

import (
	"errors"
	"time"

	"waveshooter/leaderboard"
)

// Start begins a fresh session from the start or game-over screen. It reports false, and
// changes nothing, while a session is already running.
func (g *Game) Start() bool {
	if g.ui.Status == StatusPlaying {
		return false
	}
	g.world.reset(g.spawner.NextItemInterval())
	g.ui = defaultUI(&g.cfg, StatusPlaying)
	g.start = g.now()
	g.dirty = true
	g.emit(Event{Kind: EventStart})
	g.log.Info("session started", "player", g.playerName)
	return true
}

// Retry is Start under the name the game-over screen uses
func (g *Game) Retry() bool { return g.Start() }

// endGame moves to the game-over state and records the score. A persistence failure is
// logged and does not stop the transition.
func (g *Game) endGame(now time.Time) {
	g.ui.Status = StatusGameOver
	g.ui.TimeLeft = 0
	g.dirty = true
	g.emit(Event{Kind: EventGameOver, Pos: g.world.Player})

	entry := leaderboard.Entry{Name: g.playerName, Score: g.ui.Score, Timestamp: now.UnixMilli()}
	g.lastEntry = entry
	g.log.Info("session ended", "player", entry.Name, "score", entry.Score, "damageTaken", g.ui.DamageTaken)

	if g.store == nil {
		g.board = g.board.Insert(entry)
		return
	}
	board, err := leaderboard.Record(g.store, entry)
	switch {
	case errors.Is(err, leaderboard.ErrMalformed):
		g.log.Warn("stored leaderboard is malformed, score not saved", "error", err)
		g.board = board
	case err != nil:
		g.log.Error("failed to save score", "error", err)
	default:
		g.board = board
	}
}
