package session

// State is the session lifecycle; Victory and Defeat are terminal
type State uint8

const (
	StatePlaying State = iota
	StateVictory
	StateDefeat
)

// Terminal reports whether the session accepts no further input
func (s State) Terminal() bool {
	return s != StatePlaying
}

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// StatusClass tells presentation how to color the status message
type StatusClass uint8

const (
	StatusNone StatusClass = iota
	StatusDanger
	StatusSuccess
)

// Event is a set of bit flags raised by the last tick
type Event uint16

const (
	EventDetected Event = 1 << iota
	EventLifeLost
	EventShieldHit
	EventDecoyDeployed
	EventCloakOn
	EventShieldOn
	EventVictory
	EventDefeat
)

// Has reports whether all bits of flag are set
func (e Event) Has(flag Event) bool {
	return e&flag == flag
}
