package audio

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/space-courier/session"
)

var testRate = beep.SampleRate(44100)

// drain streams s to completion and returns sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
			if buf[j][0] != buf[j][1] {
				t.Fatalf("Expected mono duplicated channels at sample %d", total+j)
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

// TestOscillatorLength verifies sample count matches duration
func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, testRate)
		n, peak := drain(t, osc)
		if n != testRate.N(50*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, testRate.N(50*time.Millisecond), n)
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %f exceeds 1", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

// TestOscillatorSquareLevels verifies square output is bipolar unit
func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(220, 20*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("Expected ±1 at %d, got %f", i, v)
		}
	}
}

// TestEnvelopeShape verifies silence at both ends and full level in the middle
func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("Expected full level mid-note, got %f", mid)
	}
	if last := buf[n-1][0]; last > 0.01 {
		t.Errorf("Expected near-silent tail, got %f", last)
	}
	if _, ok := env.Stream(buf); ok {
		t.Error("Expected envelope drained")
	}
}

// TestSynthesizeAllCues verifies every cue produces a finite bounded stream
func TestSynthesizeAllCues(t *testing.T) {
	for _, c := range []Cue{CueDetected, CueLifeLost, CueShieldHit, CueAbility, CueDecoy, CueVictory, CueDefeat} {
		s := Synthesize(c, testRate, 0.5)
		if s == nil {
			t.Fatalf("cue %d: nil streamer", c)
		}
		n, peak := drain(t, s)
		if n == 0 {
			t.Errorf("cue %d: empty stream", c)
		}
		if peak > 0.5+1e-9 {
			t.Errorf("cue %d: peak %f above master volume", c, peak)
		}
	}
	if Synthesize(Cue(99), testRate, 1) != nil {
		t.Error("Expected nil for unknown cue")
	}
}

// TestSynthesizeMuted verifies zero volume is silent
func TestSynthesizeMuted(t *testing.T) {
	_, peak := drain(t, Synthesize(CueVictory, testRate, 0))
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}

// TestCuesFor verifies event mapping and priority
func TestCuesFor(t *testing.T) {
	tests := []struct {
		ev   session.Event
		want []Cue
	}{
		{0, nil},
		{session.EventDecoyDeployed, []Cue{CueDecoy}},
		{session.EventCloakOn | session.EventShieldOn, []Cue{CueAbility}},
		{session.EventDetected | session.EventLifeLost, []Cue{CueLifeLost, CueDetected}},
		{session.EventDefeat | session.EventLifeLost, []Cue{CueDefeat, CueLifeLost}},
	}
	for _, tt := range tests {
		if got := CuesFor(tt.ev); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("events %b: expected %v, got %v", tt.ev, tt.want, got)
		}
	}
}

// TestPlayerSilentWithoutSpeaker verifies the degraded mode
func TestPlayerSilentWithoutSpeaker(t *testing.T) {
	p := NewPlayer()
	if p.Enabled() {
		t.Error("Expected disabled before Init")
	}
	if n := p.Play(session.EventVictory); n != 0 {
		t.Errorf("Expected no cues queued, got %d", n)
	}
	if !p.ToggleMute() {
		t.Error("Expected toggle to mute")
	}
	if p.ToggleMute() {
		t.Error("Expected toggle to unmute")
	}
	p.Close()
}
