package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/session"
)

// Player turns session events into cues on the speaker
// Without an initialized speaker it runs silent and Play is a no-op
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	master      float64
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewPlayer creates an uninitialized, silent player
func NewPlayer() *Player {
	return &Player{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		master: parameter.AudioMasterVolume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted.Load()
}

// SetMuted silences or restores cue playback
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Play queues the cues for ev and returns how many were queued
func (p *Player) Play(ev session.Event) int {
	if ev == 0 || p.muted.Load() {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return 0
	}

	cues := CuesFor(ev)
	streamers := make([]beep.Streamer, 0, len(cues))
	for _, c := range cues {
		if s := Synthesize(c, p.rate, p.master); s != nil {
			streamers = append(streamers, s)
		}
	}

	speaker.Lock()
	p.mixer.Add(streamers...)
	speaker.Unlock()
	return len(streamers)
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
