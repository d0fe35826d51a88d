package parameter

// Contact & Respawn
const (
	// ContactRadius is the alerted-enemy distance that costs a life
	ContactRadius = 35.0

	// InvincibilityTicks is the damage-immune window after respawn and at session start (3s)
	InvincibilityTicks = 180

	// ContactDamage is the damage applied per life-lost event
	ContactDamage = 1
)

// Session Outcome
const (
	// GoalRadius is the distance to the goal that completes the level
	GoalRadius = 30.0

	// VictoryMessage and DefeatMessage are the terminal status lines
	VictoryMessage = "LEVEL COMPLETE!"
	DefeatMessage  = "GAME OVER!"
)
