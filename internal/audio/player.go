package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferLen  = 100 * time.Millisecond
)

// Player plays a tone for every simulation event it receives.
// It is safe to call OnEvent before Init; events are dropped until the
// speaker is running.
type Player struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

// NewPlayer creates a player with a volume in [0,1].
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		volume: volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLen)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate), "volume", p.volume)
	return nil
}

// OnEvent queues the event's tone on the mixer.
func (p *Player) OnEvent(e core.Event) {
	tone, ok := ToneFor(e.Kind)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	s := tone.Streamer(sampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
