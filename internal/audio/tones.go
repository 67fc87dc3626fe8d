// Package audio synthesizes the game's sound effects with beep and plays one
// per simulation event.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

const (
	attack     = 10 * time.Millisecond
	peakGain   = 0.3
	floorGain  = 0.00001 // Gain reached at the end of the tone
	defaultLen = 200 * time.Millisecond
)

// Tone is a single oscillator sweep with a short attack and an exponential
// fade to silence.
type Tone struct {
	Wave     Wave
	From     float64       // Start frequency in Hz
	To       float64       // End frequency in Hz, reached after Sweep
	Sweep    time.Duration // Zero holds From for the whole tone
	Duration time.Duration
}

var tones = map[core.EventKind]Tone{
	core.EventBombPlaced:       {Wave: WaveSine, From: 300, To: 300, Duration: defaultLen},
	core.EventExplosion:        {Wave: WaveSaw, From: 500, To: 100, Sweep: 200 * time.Millisecond, Duration: defaultLen},
	core.EventPowerUpCollected: {Wave: WaveSquare, From: 600, To: 1200, Sweep: 100 * time.Millisecond, Duration: defaultLen},
	core.EventPlayerDied:       {Wave: WaveSaw, From: 400, To: 50, Sweep: 500 * time.Millisecond, Duration: 500 * time.Millisecond},
	core.EventDoorOpened:       {Wave: WaveSine, From: 800, To: 1600, Sweep: 200 * time.Millisecond, Duration: defaultLen},
	core.EventLevelAdvanced:    {Wave: WaveTriangle, From: 400, To: 800, Sweep: 100 * time.Millisecond, Duration: 500 * time.Millisecond},
}

// ToneFor returns the sound effect for an event kind.
func ToneFor(kind core.EventKind) (Tone, bool) {
	t, ok := tones[kind]
	return t, ok
}

// Streamer renders the tone at the given sample rate and volume in [0,1].
func (t Tone) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := &sweep{
		wave:   t.Wave,
		from:   t.From,
		to:     t.To,
		sweepN: rate.N(t.Sweep),
		rate:   rate,
	}
	shaped := &fade{
		streamer: beep.Take(rate.N(t.Duration), osc),
		attackN:  rate.N(attack),
		totalN:   rate.N(t.Duration),
	}
	return newVolume(shaped, volume)
}

// sweep is an oscillator whose frequency glides exponentially from one value
// to another, then holds.
type sweep struct {
	wave   Wave
	from   float64
	to     float64
	sweepN int
	pos    int
	phase  float64
	rate   beep.SampleRate
}

func (s *sweep) freq() float64 {
	if s.sweepN <= 0 || s.from <= 0 || s.to <= 0 || s.pos >= s.sweepN {
		if s.sweepN > 0 {
			return s.to
		}
		return s.from
	}
	p := float64(s.pos) / float64(s.sweepN)
	return s.from * math.Pow(s.to/s.from, p)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := waveValue(s.wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq() / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// waveValue samples a unit wave at phase p in [0,1).
func waveValue(w Wave, p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (p - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(p-0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// fade applies a linear attack to peakGain followed by an exponential decay
// that reaches floorGain at the end of the tone.
type fade struct {
	streamer beep.Streamer
	attackN  int
	totalN   int
	pos      int
}

func (f *fade) gain() float64 {
	if f.pos < f.attackN {
		return peakGain * float64(f.pos) / float64(f.attackN)
	}
	decayN := f.totalN - f.attackN
	if decayN <= 0 {
		return 0
	}
	p := float64(f.pos-f.attackN) / float64(decayN)
	return peakGain * math.Pow(floorGain/peakGain, min(p, 1))
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := range n {
		g := f.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume wraps a streamer with a linear volume. math.Log2(0) is -Inf, so
// zero volume is mapped to a silent effect.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
