// Package sound synthesizes the game's cues with beep and plays them on the system speaker.
// Nothing is loaded from disk; every effect is a generator.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"waveshooter/game"
	"waveshooter/gamelog"
)

const sampleRate = beep.SampleRate(44100)

// Manager turns frame events into sounds. Every method is safe to call before Init or
// after Close; without a speaker nothing is heard.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
	seed        int64
	log         gamelog.Logger
}

// NewManager creates a manager. volume is linear, 1 is unchanged.
func NewManager(volume float64, log gamelog.Logger) *Manager {
	if log == nil {
		log = gamelog.Nop()
	}
	m := &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
		seed:   time.Now().UnixNano(),
		log:    log,
	}
	m.music = &beep.Ctrl{Streamer: m.musicStream(), Paused: true}
	m.mixer.Add(m.music)
	return m
}

func (m *Manager) musicStream() beep.Streamer {
	return withVolume(NewMusicGenerator(sampleRate, 120), m.volume*0.6)
}

// Init opens the speaker. Failing is not fatal for the game; the caller may keep using
// the manager silently.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	m.music.Paused = true
	m.mixer.Add(m.music)
	speaker.Unlock()
	m.initialized = false
}

// Handle plays the cue for every event of a frame
func (m *Manager) Handle(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventStart:
			m.PlayMusic()
		case game.EventGameOver:
			m.StopMusic()
		default:
			if s := m.Cue(e); s != nil {
				m.play(s)
			}
		}
	}
}

// Cue builds the one-shot streamer for an event, or nil if the event has none
func (m *Manager) Cue(e game.Event) beep.Streamer {
	var s beep.Streamer
	switch e.Kind {
	case game.EventShot:
		s = NewSweepGenerator(sampleRate, 1400, 700, 60*time.Millisecond)
	case game.EventKill:
		// climb a semitone per chain step
		thump := 90 * math.Pow(2, float64(e.Chain-1)/12)
		m.mu.Lock()
		m.seed++
		seed := m.seed
		m.mu.Unlock()
		s = NewBurstGenerator(sampleRate, thump, 250*time.Millisecond, seed)
	case game.EventDamage:
		s = NewBuzzGenerator(sampleRate, 110, 200*time.Millisecond)
	case game.EventPowerUp:
		s = NewArpeggioGenerator(sampleRate, powerUpNotes(e.Item), 60*time.Millisecond)
	default:
		return nil
	}
	return withVolume(s, m.volume)
}

// PlayMusic starts the background loop from its first beat unless it is already running.
// The mixer holds a single music track for the manager's whole life.
func (m *Manager) PlayMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lockSpeaker()
	defer m.unlockSpeaker()
	if !m.music.Paused {
		return
	}
	m.music.Streamer = m.musicStream()
	m.music.Paused = false
}

// StopMusic pauses the background loop
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lockSpeaker()
	defer m.unlockSpeaker()
	m.music.Paused = true
}

// lockSpeaker guards mixer state against the speaker goroutine; m.mu must be held
func (m *Manager) lockSpeaker() {
	if m.initialized {
		speaker.Lock()
	}
}

func (m *Manager) unlockSpeaker() {
	if m.initialized {
		speaker.Unlock()
	}
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

func powerUpNotes(t game.ItemType) []float64 {
	switch t {
	case game.ItemShrink:
		return []float64{784, 659, 523}
	case game.ItemHeal:
		return []float64{523, 659, 784, 1047}
	case game.ItemSpeed:
		return []float64{659, 880, 1175}
	default:
		return []float64{523, 659, 784}
	}
}

// withVolume scales a stream linearly; zero or less is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
