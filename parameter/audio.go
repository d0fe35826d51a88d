package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the linear gain applied to every cue (0..1)
	AudioMasterVolume = 0.4
)

// Audio Cues
const (
	// CueAttack and CueRelease shape every cue envelope
	CueAttack  = 5 * time.Millisecond
	CueRelease = 40 * time.Millisecond

	// CueDetectedFreq is the alert chirp base frequency
	CueDetectedFreq     = 880.0
	CueDetectedDuration = 90 * time.Millisecond

	// CueLifeLostFreq is the low buzz on contact damage
	CueLifeLostFreq     = 110.0
	CueLifeLostDuration = 350 * time.Millisecond

	// CueAbilityFreq is the ability activation blip
	CueAbilityFreq     = 520.0
	CueAbilityDuration = 70 * time.Millisecond

	// CueDecoyFreq is the decoy drop tone
	CueDecoyFreq     = 330.0
	CueDecoyDuration = 120 * time.Millisecond

	// CueVictoryFreq is the root of the two-note victory jingle
	CueVictoryFreq     = 660.0
	CueVictoryDuration = 150 * time.Millisecond

	// CueDefeatFreq is the root of the falling defeat phrase
	CueDefeatFreq     = 220.0
	CueDefeatDuration = 250 * time.Millisecond
)
