package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator is a square-ish blip gliding from one pitch to another. Used for shots.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	length   int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: max(1, sr.N(d))}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress

		// soft square: sine plus a third harmonic
		s := math.Sin(2*math.Pi*g.phase) + 0.3*math.Sin(6*math.Pi*g.phase)
		s *= 0.12 * (1 - progress)

		samples[i][0] = s
		samples[i][1] = s
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error { return nil }

// BurstGenerator is a decaying noise crackle over a low thump. Used for kills; pitch
// rises with the chain value.
type BurstGenerator struct {
	sr     beep.SampleRate
	thump  float64
	pos    int
	length int
	seed   int64
}

// NewBurstGenerator creates a burst lasting d
func NewBurstGenerator(sr beep.SampleRate, thump float64, d time.Duration, seed int64) *BurstGenerator {
	return &BurstGenerator{sr: sr, thump: thump, length: max(1, sr.N(d)), seed: seed}
}

func (g *BurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 14)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		s := env * (0.18*noise + 0.25*math.Sin(2*math.Pi*g.thump*t))
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *BurstGenerator) Err() error { return nil }

// BuzzGenerator is a harsh harmonic buzz. Used when the player takes damage.
type BuzzGenerator struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
}

// NewBuzzGenerator creates a buzz lasting d
func NewBuzzGenerator(sr beep.SampleRate, freq float64, d time.Duration) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq, length: max(1, sr.N(d))}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		s := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		attack := math.Min(t/0.02, 1.0)
		release := 1 - float64(g.pos)/float64(g.length)
		s *= 0.5 * attack * release

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// ArpeggioGenerator plays a short rising run of notes. Used for power-ups.
type ArpeggioGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	perNote int
	pos     int
}

// NewArpeggioGenerator plays each note for step
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, step time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{sr: sr, notes: notes, perNote: max(1, sr.N(step))}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.perNote * len(g.notes)
	for i := range samples {
		if g.pos >= total {
			return i, i > 0
		}
		note := g.notes[g.pos/g.perNote]
		inNote := g.pos % g.perNote
		t := float64(inNote) / float64(g.sr)
		env := 1 - float64(inNote)/float64(g.perNote)

		s := 0.15 * env * math.Sin(2*math.Pi*note*t)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error { return nil }

// MusicGenerator is an endless kick-and-bass loop for the background track
type MusicGenerator struct {
	sr      beep.SampleRate
	pos     int
	beat    int
	kickLen int
	bass    [4]float64
}

// NewMusicGenerator creates a loop at bpm
func NewMusicGenerator(sr beep.SampleRate, bpm float64) *MusicGenerator {
	beat := time.Duration(float64(time.Minute) / bpm)
	return &MusicGenerator{
		sr:      sr,
		beat:    max(1, sr.N(beat)),
		kickLen: max(1, sr.N(100*time.Millisecond)),
		bass:    [4]float64{55, 55, 65.41, 49},
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		bar := (g.pos / g.beat) % len(g.bass)
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kickLen {
			env := 1 - float64(beatPos)/float64(g.kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		bass := 0.1 * math.Sin(2*math.Pi*g.bass[bar]*t)

		s := kick + bass
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error { return nil }
