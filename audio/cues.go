package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/session"
)

// Cue identifies a synthesized sound
type Cue int

const (
	CueDetected Cue = iota
	CueLifeLost
	CueShieldHit
	CueAbility
	CueDecoy
	CueVictory
	CueDefeat
)

// cueOrder is the priority order used when one tick raises several events
var cueOrder = []struct {
	event session.Event
	cue   Cue
}{
	{session.EventVictory, CueVictory},
	{session.EventDefeat, CueDefeat},
	{session.EventLifeLost, CueLifeLost},
	{session.EventShieldHit, CueShieldHit},
	{session.EventDetected, CueDetected},
	{session.EventDecoyDeployed, CueDecoy},
	{session.EventCloakOn, CueAbility},
	{session.EventShieldOn, CueAbility},
}

// CuesFor maps tick events to cues, deduplicated, most important first
func CuesFor(ev session.Event) []Cue {
	var cues []Cue
	seen := make(map[Cue]bool, len(cueOrder))
	for _, m := range cueOrder {
		if ev.Has(m.event) && !seen[m.cue] {
			seen[m.cue] = true
			cues = append(cues, m.cue)
		}
	}
	return cues
}

// tone is a shaped oscillator note
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, parameter.CueAttack, parameter.CueRelease, rate)
}

// sine is a shaped pure tone from the beep generator
func sine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist, fall back to the local oscillator
		return tone(freq, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), s), d, parameter.CueAttack, parameter.CueRelease, rate)
}

// rest is a silent gap; a zero-frequency sine never leaves phase 0
func rest(d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewOscillator(0, d, WaveSine, rate)
}

// Synthesize builds the streamer for c at master volume
func Synthesize(c Cue, rate beep.SampleRate, master float64) beep.Streamer {
	var s beep.Streamer

	switch c {
	case CueDetected:
		// Rising two-blip alarm
		d := parameter.CueDetectedDuration
		s = beep.Seq(
			tone(parameter.CueDetectedFreq, d, WaveSquare, rate),
			tone(parameter.CueDetectedFreq*1.25, d, WaveSquare, rate),
		)
	case CueLifeLost:
		d := parameter.CueLifeLostDuration
		s = beep.Mix(
			newVolume(tone(parameter.CueLifeLostFreq, d, WaveSaw, rate), 0.7),
			newVolume(tone(0, d, WaveNoise, rate), 0.3),
		)
	case CueShieldHit:
		d := parameter.CueAbilityDuration
		s = tone(parameter.CueAbilityFreq/2, d, WaveSquare, rate)
	case CueAbility:
		s = sine(parameter.CueAbilityFreq, parameter.CueAbilityDuration, rate)
	case CueDecoy:
		d := parameter.CueDecoyDuration
		s = beep.Mix(
			newVolume(sine(parameter.CueDecoyFreq, d, rate), 0.6),
			newVolume(sine(parameter.CueDecoyFreq*2, d, rate), 0.4),
		)
	case CueVictory:
		d := parameter.CueVictoryDuration
		s = beep.Seq(
			sine(parameter.CueVictoryFreq, d, rate),
			sine(parameter.CueVictoryFreq*1.5, 2*d, rate),
		)
	case CueDefeat:
		d := parameter.CueDefeatDuration
		s = beep.Seq(
			tone(parameter.CueDefeatFreq, d, WaveSaw, rate),
			rest(d/4, rate),
			tone(parameter.CueDefeatFreq*0.75, 2*d, WaveSaw, rate),
		)
	default:
		return nil
	}

	return newVolume(s, master)
}
