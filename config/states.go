package config

// StateID identifies what an agent is doing, for logic and for the
// presentation layer.
type StateID int

const (
	StateNone StateID = iota - 1
	Idle
	Walking
	Attacking
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Attacking:
		return "attacking"
	default:
		return "none"
	}
}
