package model

import (
	"math"

	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/vmath"
)

// Enemy is a patrol ship with omnidirectional perception and suspicion-driven pursuit
// Suspicion is the only stored state; Chasing and Alerted are derived from it
type Enemy struct {
	Position      vmath.Vector2
	Speed         float64
	Rotation      float64 // Radians
	RotationSpeed float64
	PatrolRadius  float64
	ViewDistance  float64
	ViewAngle     float64 // Degrees, >= 360 disables the cone check

	suspicion    float64
	patrolAnchor vmath.Vector2
	patrolPhase  float64
	lastKnown    vmath.Vector2
	chaseTimer   int
}

// NewEnemy creates an enemy anchored at spawn with a randomized patrol phase
func NewEnemy(spawn vmath.Vector2, rng *vmath.Rand) *Enemy {
	return &Enemy{
		Position:      spawn,
		Speed:         parameter.EnemySpeed,
		RotationSpeed: parameter.EnemyRotationSpeed,
		PatrolRadius:  parameter.EnemyPatrolRadius,
		ViewDistance:  parameter.EnemyViewDistance,
		ViewAngle:     parameter.EnemyViewAngle,
		patrolAnchor:  spawn,
		patrolPhase:   rng.Angle(),
		lastKnown:     spawn,
	}
}

// Suspicion returns the current suspicion level in [0, SuspicionMax]
func (e *Enemy) Suspicion() float64 { return e.suspicion }

// Chasing reports pursuit state
func (e *Enemy) Chasing() bool { return e.suspicion >= parameter.SuspicionChaseThreshold }

// Alerted reports contact-damage eligibility, a sub-state of Chasing
func (e *Enemy) Alerted() bool { return e.suspicion >= parameter.SuspicionAlertThreshold }

// ChaseTimer returns the remaining pursuit commitment in ticks
func (e *Enemy) ChaseTimer() int { return e.chaseTimer }

// LastKnownTarget returns the latched target position
func (e *Enemy) LastKnownTarget() vmath.Vector2 { return e.lastKnown }

// PatrolCenter returns the fixed spawn anchor
func (e *Enemy) PatrolCenter() vmath.Vector2 { return e.patrolAnchor }

// PatrolPhase returns the current patrol loop angle
func (e *Enemy) PatrolPhase() float64 { return e.patrolPhase }

// CanSee returns true if pos is within view distance and, for a narrow cone, within ViewAngle of Rotation
func (e *Enemy) CanSee(pos vmath.Vector2) bool {
	if e.Position.DistanceTo(pos) > e.ViewDistance {
		return false
	}
	if e.ViewAngle >= 360 {
		return true
	}
	diff := vmath.WrapAngle(vmath.Bearing(e.Position, pos) - e.Rotation)
	return math.Abs(diff) < vmath.DegToRad(e.ViewAngle/2)
}

// UpdateAI runs one tick of perception, suspicion, steering and movement
// decoys is a read-only view of live decoy positions taken after expiry pruning
func (e *Enemy) UpdateAI(playerPos vmath.Vector2, playerCloaked bool, decoys []vmath.Vector2) {
	target, seen := e.acquireTarget(playerPos, playerCloaked, decoys)

	if seen {
		e.suspicion = math.Min(parameter.SuspicionMax, e.suspicion+parameter.SuspicionGainPerTick)
		e.lastKnown = target
		e.chaseTimer = parameter.ChaseCommitTicks
	} else {
		e.suspicion = math.Max(0, e.suspicion-parameter.SuspicionDecayPerTick)
		if e.suspicion < parameter.SuspicionForgetThreshold {
			e.chaseTimer = 0
		}
	}

	e.steer()

	if e.Chasing() && e.chaseTimer > 0 {
		e.chaseTimer--
		e.Position = e.Position.StepToward(
			e.lastKnown,
			e.Speed*parameter.EnemyChaseSpeedMultiplier,
			parameter.EnemyArriveDistance,
		)
	} else {
		e.patrolPhase += parameter.EnemyPatrolPhaseStep
		e.Position = vmath.EllipsePoint(
			e.patrolAnchor,
			e.PatrolRadius*parameter.EnemyPatrolRadiusXFactor,
			e.PatrolRadius*parameter.EnemyPatrolRadiusYFactor,
			e.patrolPhase,
		)
	}

	inset := parameter.EnemyBoundsInset
	e.Position = e.Position.Clamp(inset, inset, parameter.ArenaWidth-inset, parameter.ArenaHeight-inset)
}

// acquireTarget picks the nearest visible candidate
// Player is evaluated first so it wins exact-distance ties; decoys ignore cloak
func (e *Enemy) acquireTarget(playerPos vmath.Vector2, playerCloaked bool, decoys []vmath.Vector2) (vmath.Vector2, bool) {
	var target vmath.Vector2
	seen := false
	closest := math.MaxFloat64

	if !playerCloaked && e.CanSee(playerPos) {
		if d := e.Position.DistanceTo(playerPos); d < closest {
			closest = d
			target = playerPos
			seen = true
		}
	}

	for _, pos := range decoys {
		if !e.CanSee(pos) {
			continue
		}
		if d := e.Position.DistanceTo(pos); d < closest {
			closest = d
			target = pos
			seen = true
		}
	}

	return target, seen
}

// steer turns toward the last known target, faster while chasing
func (e *Enemy) steer() {
	diff := vmath.WrapAngle(vmath.Bearing(e.Position, e.lastKnown) - e.Rotation)
	turn := parameter.EnemyPatrolTurnMultiplier
	if e.Chasing() {
		turn = parameter.EnemyChaseTurnMultiplier
	}
	e.Rotation += diff * e.RotationSpeed * turn
}
