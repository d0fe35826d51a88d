package parameter

// Player Ship
const (
	// PlayerSpeed is the distance travelled per tick along a normalized move vector
	PlayerSpeed = 5.0

	// PlayerMaxHealth is the starting life count, 0 is terminal
	PlayerMaxHealth = 3

	// PlayerStartDecoys is the decoy inventory at session start
	PlayerStartDecoys = 3
)

// Energy Economy
const (
	// EnergyMax is the energy cap
	EnergyMax = 100.0

	// EnergyRegenPerTick is added every tick before the cap is applied
	EnergyRegenPerTick = 0.5

	// CloakActivationEnergy is the minimum energy to engage cloak
	CloakActivationEnergy = 10.0

	// CloakDrainPerTick is subtracted every tick while cloaked
	CloakDrainPerTick = 2.0

	// ShieldActivationEnergy is the minimum energy to raise the shield
	ShieldActivationEnergy = 30.0

	// ShieldDrainPerTick is subtracted every tick while shielded
	ShieldDrainPerTick = 5.0

	// ShieldAbsorbCost is the energy consumed per absorbed damage event
	ShieldAbsorbCost = 1.5
)
