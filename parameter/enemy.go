package parameter

// Enemy Entity
const (
	// EnemySpeed is the base movement per tick
	EnemySpeed = 1.8

	// EnemyChaseSpeedMultiplier scales EnemySpeed while pursuing
	EnemyChaseSpeedMultiplier = 1.2

	// EnemyRotationSpeed is the fraction of heading error corrected per tick (before mode multiplier)
	EnemyRotationSpeed = 0.08

	// EnemyChaseTurnMultiplier and EnemyPatrolTurnMultiplier scale EnemyRotationSpeed
	EnemyChaseTurnMultiplier  = 2.0
	EnemyPatrolTurnMultiplier = 0.5

	// EnemyViewDistance is the detection radius
	EnemyViewDistance = 150.0

	// EnemyViewAngle is the field of view in degrees, 360 is omnidirectional
	EnemyViewAngle = 360.0

	// EnemyArriveDistance is the radius around the target where pursuit stops stepping
	EnemyArriveDistance = 3.0

	// EnemyBoundsInset keeps enemies this far from each arena edge
	EnemyBoundsInset = 25.0
)

// Enemy Patrol
const (
	// EnemyPatrolRadius is the base radius of the patrol loop
	EnemyPatrolRadius = 120.0

	// EnemyPatrolRadiusXFactor and EnemyPatrolRadiusYFactor shape the patrol ellipse
	EnemyPatrolRadiusXFactor = 0.8
	EnemyPatrolRadiusYFactor = 0.7

	// EnemyPatrolPhaseStep is the patrol angle advance per tick (radians)
	EnemyPatrolPhaseStep = 0.018
)

// Enemy Suspicion
const (
	// SuspicionMax caps the suspicion scalar
	SuspicionMax = 100.0

	// SuspicionGainPerTick is added on every tick a target is visible
	SuspicionGainPerTick = 3.0

	// SuspicionDecayPerTick is removed on every tick nothing is visible
	SuspicionDecayPerTick = 0.7

	// SuspicionChaseThreshold: at or above, the enemy pursues
	SuspicionChaseThreshold = 30.0

	// SuspicionAlertThreshold: at or above, the enemy deals contact damage
	SuspicionAlertThreshold = 70.0

	// SuspicionForgetThreshold: below, the chase commitment is dropped
	SuspicionForgetThreshold = 20.0

	// ChaseCommitTicks is the pursuit commitment re-armed on each detection (7s)
	ChaseCommitTicks = 420
)
