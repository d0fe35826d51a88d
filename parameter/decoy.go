package parameter

// Decoy Entity
const (
	// DecoyLifetimeTicks is the decoy lifespan (6s)
	DecoyLifetimeTicks = 360

	// DecoySpawnMinDistance and DecoySpawnMaxDistance bound the random drop offset from the player
	DecoySpawnMinDistance = 70.0
	DecoySpawnMaxDistance = 140.0

	// Alpha = DecoyAlphaBase + DecoyAlphaSpan * (sin(lifetime*DecoyAlphaFreq)+1)/2
	DecoyAlphaBase = 0.3
	DecoyAlphaSpan = 0.7
	DecoyAlphaFreq = 0.15

	// Pulse = DecoyPulseBase + DecoyPulseSpan * sin(lifetime*DecoyPulseFreq)
	DecoyPulseBase = 0.8
	DecoyPulseSpan = 0.4
	DecoyPulseFreq = 0.2
)
