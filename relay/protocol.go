package relay

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"waveshooter/game"
	"waveshooter/leaderboard"
)

// Inbound command types
const (
	CmdPose  = "pose"
	CmdStart = "start"
	CmdRetry = "retry"
	CmdName  = "name"
)

// Outbound message types
const (
	MsgHello    = "hello"
	MsgFrame    = "frame"
	MsgSnapshot = "snapshot"
	MsgError    = "error"
)

// Command is sent by the browser host. Pose carries the player position and heading.
type Command struct {
	Type    string    `json:"type" msgpack:"type"`
	Pos     game.Vec2 `json:"pos,omitempty" msgpack:"pos,omitempty"`
	Forward game.Vec2 `json:"forward,omitempty" msgpack:"forward,omitempty"`
	Name    string    `json:"name,omitempty" msgpack:"name,omitempty"`
}

// Message is everything the relay sends back
type Message struct {
	Type     string            `json:"type" msgpack:"type"`
	Session  string            `json:"session,omitempty" msgpack:"session,omitempty"`
	Tick     uint64            `json:"tick,omitempty" msgpack:"tick,omitempty"`
	UI       *game.UIState     `json:"ui,omitempty" msgpack:"ui,omitempty"`
	Events   []game.Event      `json:"events,omitempty" msgpack:"events,omitempty"`
	Snapshot *Snapshot         `json:"snapshot,omitempty" msgpack:"snapshot,omitempty"`
	Board    leaderboard.Board `json:"board,omitempty" msgpack:"board,omitempty"`
	Error    string            `json:"error,omitempty" msgpack:"error,omitempty"`
}

// Point is a compact position
type Point struct {
	X float32 `json:"x" msgpack:"x"`
	Z float32 `json:"z" msgpack:"z"`
}

// ItemPoint is a power-up position tagged with its kind
type ItemPoint struct {
	Point `msgpack:",inline"`
	Kind  string `json:"kind" msgpack:"kind"`
}

// LabelPoint is a floating chain label
type LabelPoint struct {
	Point `msgpack:",inline"`
	Text  string `json:"text" msgpack:"text"`
}

// Snapshot is the drawable part of the world
type Snapshot struct {
	Player  Point        `json:"player" msgpack:"player"`
	Forward Point        `json:"forward" msgpack:"forward"`
	Bullets []Point      `json:"bullets" msgpack:"bullets"`
	Enemies []Point      `json:"enemies" msgpack:"enemies"`
	Items   []ItemPoint  `json:"items" msgpack:"items"`
	Effects []Point      `json:"effects" msgpack:"effects"`
	Labels  []LabelPoint `json:"labels" msgpack:"labels"`
}

func point(v game.Vec2) Point { return Point{X: float32(v.X), Z: float32(v.Z)} }

// fill overwrites s with the current pools, reusing its slices
func (s *Snapshot) fill(w *game.World) {
	s.Player = point(w.Player)
	s.Forward = point(w.Forward)

	s.Bullets = s.Bullets[:0]
	for _, b := range w.Bullets.Live() {
		s.Bullets = append(s.Bullets, point(b.Pos))
	}
	s.Enemies = s.Enemies[:0]
	for _, e := range w.Enemies.Live() {
		s.Enemies = append(s.Enemies, point(e.Pos))
	}
	s.Items = s.Items[:0]
	for _, it := range w.Items.Live() {
		s.Items = append(s.Items, ItemPoint{Point: point(it.Pos), Kind: it.Type.String()})
	}
	s.Effects = s.Effects[:0]
	for _, fx := range w.Effects.Live() {
		s.Effects = append(s.Effects, point(fx.Pos))
	}
	s.Labels = s.Labels[:0]
	for _, l := range w.Labels.Live() {
		s.Labels = append(s.Labels, LabelPoint{Point: point(l.Pos), Text: l.Text()})
	}
}

// Codec encodes messages for one connection
type Codec interface {
	Name() string
	// MessageType is the websocket frame type the codec writes
	MessageType() int
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) MessageType() int                   { return websocket.TextMessage }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type msgpackCodec struct{}

func (msgpackCodec) Name() string                       { return "msgpack" }
func (msgpackCodec) MessageType() int                   { return websocket.BinaryMessage }
func (msgpackCodec) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (msgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// JSON and Msgpack are the supported codecs
var (
	JSON    Codec = jsonCodec{}
	Msgpack Codec = msgpackCodec{}
)

// CodecFor picks a codec by name; empty means JSON
func CodecFor(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSON, nil
	case "msgpack":
		return Msgpack, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
