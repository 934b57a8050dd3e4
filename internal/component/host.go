// internal/component/host.go
package component

// Host marks an entity that can be infected. A host without an Infected
// record is healthy.
type Host struct{}

// Infected is the infection state of a host. All fields except Remaining are
// captured when the infection starts and never change afterwards.
type Infected struct {
	Remaining float64 // seconds until the host bursts
	Initial   float64
	DecayRate float64 // timer units consumed per second
	Offspring int     // hostiles released on death
}

// Progress returns how far the infection has run, in [0, 1].
func (i *Infected) Progress() float64 {
	if i.Initial <= 0 {
		return 1
	}
	p := 1 - i.Remaining/i.Initial
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
