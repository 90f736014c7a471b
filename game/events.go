package game

import "fmt"

// EventKind tags a frame event
type EventKind uint8

const (
	// EventShot fires once per volley
	EventShot EventKind = iota
	// EventKill carries the enemy position and the chain value it scored with
	EventKill
	// EventDamage carries the total hp lost this frame
	EventDamage
	// EventPowerUp carries the collected item type
	EventPowerUp
	EventStart
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventKill:
		return "kill"
	case EventDamage:
		return "damage"
	case EventPowerUp:
		return "powerup"
	case EventStart:
		return "start"
	case EventGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(text []byte) error {
	for c := EventShot; c <= EventGameOver; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("invalid event kind %q", text)
}

// Event is something a host may want to react to, typically with a sound
type Event struct {
	Kind   EventKind `json:"kind" msgpack:"kind"`
	Pos    Vec2      `json:"pos" msgpack:"pos"`
	Chain  int       `json:"chain,omitempty" msgpack:"chain,omitempty"`
	Amount int       `json:"amount,omitempty" msgpack:"amount,omitempty"`
	Item   ItemType  `json:"item,omitempty" msgpack:"item,omitempty"`
}

// maxFrameEvents bounds the per-frame event buffer; later events in a frame are dropped
const maxFrameEvents = 256

// eventBuffer is reused across frames
type eventBuffer struct {
	buf []Event
}

func newEventBuffer() eventBuffer {
	return eventBuffer{buf: make([]Event, 0, maxFrameEvents)}
}

func (b *eventBuffer) push(e Event) {
	if len(b.buf) < cap(b.buf) {
		b.buf = append(b.buf, e)
	}
}

func (b *eventBuffer) reset() { b.buf = b.buf[:0] }
