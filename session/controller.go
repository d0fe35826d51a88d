package session

import (
	"log"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/space-courier/input"
	"github.com/lixenwraith/space-courier/model"
	"github.com/lixenwraith/space-courier/parameter"
	"github.com/lixenwraith/space-courier/status"
	"github.com/lixenwraith/space-courier/vmath"
)

// Controller owns one Simulation and the session lifecycle around it
// Not safe for concurrent use; the caller serializes Tick, Restart and View
type Controller struct {
	id        uuid.UUID
	seed      uint64
	fixedSeed bool
	seeder    *vmath.Rand

	sim     *model.Simulation
	state   State
	message string
	class   StatusClass
	events  Event

	registry     *status.Registry
	livesLost    *atomic.Int64
	decoysUsed   *atomic.Int64
	detections   *atomic.Int64
	maxSuspicion *status.AtomicFloat
	sessionID    *status.AtomicString
}

// Option configures a Controller
type Option func(*Controller)

// WithRegistry publishes session counters into r
func WithRegistry(r *status.Registry) Option {
	return func(c *Controller) { c.registry = r }
}

// WithFixedSeed makes Restart reuse the initial seed instead of deriving a new one
func WithFixedSeed() Option {
	return func(c *Controller) { c.fixedSeed = true }
}

// New starts a session seeded with seed
func New(seed uint64, opts ...Option) *Controller {
	c := &Controller{
		seed:   seed,
		seeder: vmath.NewRand(seed),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = status.NewRegistry()
	}

	c.livesLost = c.registry.Ints.Get(status.KeySessionLivesLost)
	c.decoysUsed = c.registry.Ints.Get(status.KeySessionDecoysUsed)
	c.detections = c.registry.Ints.Get(status.KeySessionDetections)
	c.maxSuspicion = c.registry.Floats.Get(status.KeySessionMaxSuspicion)
	c.sessionID = c.registry.Strings.Get(status.KeySessionID)

	c.begin(seed)
	return c
}

// begin builds a fresh simulation and resets lifecycle and counters
func (c *Controller) begin(seed uint64) {
	c.seed = seed
	c.id = uuid.New()
	c.sim = model.NewSimulation(vmath.NewRand(seed))
	c.state = StatePlaying
	c.message = ""
	c.class = StatusNone
	c.events = 0

	c.livesLost.Store(0)
	c.decoysUsed.Store(0)
	c.detections.Store(0)
	c.maxSuspicion.Set(0)
	c.sessionID.Store(c.id.String())

	log.Printf("session start id=%s seed=%d", c.id, seed)
}

// Restart discards the current simulation and starts a new one
func (c *Controller) Restart() {
	seed := c.seed
	if !c.fixedSeed {
		seed = c.seeder.Uint64()
	}
	log.Printf("session restart id=%s state=%s tick=%d", c.id, c.state, c.sim.Tick())
	c.begin(seed)
}

// ID returns the session identifier
func (c *Controller) ID() uuid.UUID { return c.id }

// Seed returns the seed of the running simulation
func (c *Controller) Seed() uint64 { return c.seed }

// State returns the lifecycle state
func (c *Controller) State() State { return c.state }

// Events returns the flags raised by the last Tick
func (c *Controller) Events() Event { return c.events }

// Tick applies one intent and advances the simulation by one step
// Terminal sessions ignore input and do not advance
func (c *Controller) Tick(in input.Intent) {
	c.events = 0
	if c.state.Terminal() {
		return
	}

	p := c.sim.Player
	wasCloaked, wasShielded := p.IsCloaked(), p.IsShielded()

	if !in.Move.IsZero() {
		c.sim.MovePlayer(in.Move)
	}
	if in.Cloak {
		c.sim.ActivateCloak()
	}
	if in.Shield {
		c.sim.ActivateShield()
	}
	if in.Decoy && c.sim.UseDecoy() {
		c.events |= EventDecoyDeployed
		c.decoysUsed.Add(1)
	}
	if p.IsCloaked() && !wasCloaked {
		c.events |= EventCloakOn
	}
	if p.IsShielded() && !wasShielded {
		c.events |= EventShieldOn
	}

	report := c.sim.Update()

	if report.NewlyAlerted > 0 {
		c.events |= EventDetected
		c.detections.Add(int64(report.NewlyAlerted))
	}
	if report.LifeLost {
		c.events |= EventLifeLost
		c.livesLost.Add(1)
		log.Printf("life lost id=%s tick=%d health=%d", c.id, c.sim.Tick(), p.Health)
	}
	if report.Absorbed {
		c.events |= EventShieldHit
	}
	for _, e := range c.sim.Enemies {
		c.maxSuspicion.Max(e.Suspicion())
	}

	c.evaluate()
}

// evaluate applies the win/loss rules after a completed update
func (c *Controller) evaluate() {
	switch {
	case c.sim.Player.Health <= 0:
		c.state = StateDefeat
		c.message = parameter.DefeatMessage
		c.class = StatusDanger
		c.events |= EventDefeat
	case c.sim.DistanceToGoal() < parameter.GoalRadius:
		c.state = StateVictory
		c.message = parameter.VictoryMessage
		c.class = StatusSuccess
		c.events |= EventVictory
	default:
		return
	}
	log.Printf("session end id=%s state=%s tick=%d lives_lost=%d decoys_used=%d",
		c.id, c.state, c.sim.Tick(), c.livesLost.Load(), c.decoysUsed.Load())
}

// View returns a presentation copy of the current state
func (c *Controller) View() View {
	s := c.sim
	p := s.Player

	v := View{
		SessionID: c.id.String(),
		Seed:      c.seed,
		Tick:      s.Tick(),
		Width:     s.Width,
		Height:    s.Height,
		Station:   s.Station,
		Goal:      s.Goal,
		Player: PlayerView{
			Position:  p.Position,
			Direction: p.Direction,
			Health:    p.Health,
			MaxHealth: parameter.PlayerMaxHealth,
			Energy:    p.Energy,
			MaxEnergy: p.MaxEnergy,
			Decoys:    p.Decoys,
			Cloaked:   p.IsCloaked(),
			Shielded:  p.IsShielded(),
		},
		Enemies:        make([]EnemyView, 0, len(s.Enemies)),
		Decoys:         make([]DecoyView, 0, len(s.Decoys)),
		Invincible:     s.PlayerInvincible(),
		DistanceToGoal: s.DistanceToGoal(),
		State:          c.state,
		Message:        c.message,
		Class:          c.class,
	}

	for _, e := range s.Enemies {
		v.Enemies = append(v.Enemies, EnemyView{
			Position:     e.Position,
			Rotation:     e.Rotation,
			Suspicion:    e.Suspicion(),
			Chasing:      e.Chasing(),
			Alerted:      e.Alerted(),
			ViewDistance: e.ViewDistance,
			PatrolCenter: e.PatrolCenter(),
		})
	}
	for _, d := range s.Decoys {
		v.Decoys = append(v.Decoys, DecoyView{
			Position: d.Position,
			Lifetime: d.Lifetime,
			Alpha:    d.Alpha,
			Pulse:    d.Pulse,
		})
	}

	return v
}

// Snapshot encodes the running simulation for a debug dump
func (c *Controller) Snapshot() ([]byte, error) {
	snap, err := c.sim.Snapshot()
	if err != nil {
		return nil, errors.Wrapf(err, "session %s", c.id)
	}
	return model.EncodeSnapshot(snap)
}
