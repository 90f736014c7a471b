package relay

import (
	"context"
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"waveshooter/game"
	"waveshooter/gamelog"
)

// Room runs one player's game for one websocket connection. The game is only ever
// touched from the Run goroutine; the read pump hands commands over through the inbox.
type Room struct {
	ID string

	cfg   Config
	conn  *websocket.Conn
	codec Codec
	game  *game.Game
	log   gamelog.Logger

	inbox chan Command
	send  chan []byte

	pose     game.Input
	tick     uint64
	snapshot Snapshot
}

func newRoom(id string, cfg Config, conn *websocket.Conn, codec Codec, g *game.Game, log gamelog.Logger) *Room {
	return &Room{
		ID:    id,
		cfg:   cfg,
		conn:  conn,
		codec: codec,
		game:  g,
		log:   log,
		inbox: make(chan Command, cfg.InboxSize),
		send:  make(chan []byte, cfg.SendBuffer),
		pose:  game.Input{Forward: game.Vec2{Z: -1}},
	}
}

// Run drives the game until ctx ends or the connection drops
func (r *Room) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer r.conn.Close()

	go r.readPump(ctx, cancel)
	go r.writePump(ctx, cancel)

	r.enqueue(Message{
		Type:    MsgHello,
		Session: r.ID,
		UI:      ptr(r.game.UI()),
		Board:   r.game.Leaderboard(),
	})

	ticker := time.NewTicker(r.cfg.TickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-r.inbox:
			r.apply(cmd)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.step(dt)
		}
	}
}

func (r *Room) apply(cmd Command) {
	switch cmd.Type {
	case CmdPose:
		r.pose = game.Input{Position: cmd.Pos, Forward: cmd.Forward}
	case CmdStart:
		r.pose.Position = game.Vec2{}
		r.game.Start()
	case CmdRetry:
		r.pose.Position = game.Vec2{}
		r.game.Retry()
	case CmdName:
		r.game.SetPlayerName(cmd.Name)
	default:
		r.enqueue(Message{Type: MsgError, Error: "unknown command " + cmd.Type})
	}
}

func (r *Room) step(dt float64) {
	r.tick++
	frame := r.game.Tick(dt, r.pose)

	if frame.Changed || len(frame.Events) > 0 {
		msg := Message{Type: MsgFrame, Tick: r.tick, UI: &frame.UI, Events: frame.Events}
		if frame.UI.Status == game.StatusGameOver && frame.Changed {
			msg.Board = r.game.Leaderboard()
		}
		r.enqueue(msg)
	}

	if r.game.UI().Status == game.StatusPlaying && r.tick%uint64(r.cfg.SnapshotEvery) == 0 {
		r.snapshot.fill(r.game.World())
		r.enqueue(Message{Type: MsgSnapshot, Tick: r.tick, Snapshot: &r.snapshot})
	}
}

// enqueue encodes msg now, since frame events and the snapshot are reused by the next tick.
// A full send buffer drops the message.
func (r *Room) enqueue(msg Message) {
	data, err := r.codec.Marshal(&msg)
	if err != nil {
		r.log.Error("encode message", "type", msg.Type, "err", err)
		return
	}
	select {
	case r.send <- data:
	default:
		r.log.Warn("send buffer full, dropping message", "type", msg.Type)
	}
}

func (r *Room) readPump(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()

	r.conn.SetReadLimit(r.cfg.ReadLimit)
	_ = r.conn.SetReadDeadline(time.Now().Add(r.cfg.PongWait))
	r.conn.SetPongHandler(func(string) error {
		return r.conn.SetReadDeadline(time.Now().Add(r.cfg.PongWait))
	})

	for {
		_, data, err := r.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !errors.Is(err, context.Canceled) {
				r.log.Debug("read ended", "err", err)
			}
			return
		}
		_ = r.conn.SetReadDeadline(time.Now().Add(r.cfg.PongWait))

		var cmd Command
		if err := r.codec.Unmarshal(data, &cmd); err != nil {
			r.enqueue(Message{Type: MsgError, Error: "malformed command"})
			continue
		}
		select {
		case r.inbox <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

func (r *Room) writePump(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()

	ping := time.NewTicker(r.cfg.PingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = r.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(r.cfg.WriteWait))
			return
		case data := <-r.send:
			_ = r.conn.SetWriteDeadline(time.Now().Add(r.cfg.WriteWait))
			if err := r.conn.WriteMessage(r.codec.MessageType(), data); err != nil {
				r.log.Debug("write failed", "err", err)
				return
			}
		case <-ping.C:
			_ = r.conn.SetWriteDeadline(time.Now().Add(r.cfg.WriteWait))
			if err := r.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func ptr[T any](v T) *T { return &v }
