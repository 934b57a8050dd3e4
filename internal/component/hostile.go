// internal/component/hostile.go
package component

// HostileClass is the behaviour variant of a hostile.
type HostileClass int

const (
	// HostileInfectThenDie attacks a host once and then dies with it.
	HostileInfectThenDie HostileClass = iota
)

func (c HostileClass) String() string {
	switch c {
	case HostileInfectThenDie:
		return "infect-then-die"
	default:
		return "unknown"
	}
}

// Hostile represents a virus particle.
type Hostile struct {
	Class HostileClass
}

// VirusAttached is set once a hostile has attached to a host. It is never
// removed; the hostile stops moving and seeking for good.
type VirusAttached struct{}

// DespawnOnContact lets two colliding entities destroy each other when no more
// specific encounter rule applies to them.
type DespawnOnContact struct{}
