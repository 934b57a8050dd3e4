// internal/component/class.go
package component

// EntityClass is the capability class used to route collisions.
type EntityClass int

const (
	ClassNeutral EntityClass = iota
	ClassPlayer
	ClassAlly
	ClassHostile
	ClassHost
)

// DefenderClasses are the classes that destroy unattached hostiles on contact.
var DefenderClasses = []EntityClass{ClassPlayer, ClassAlly}

func (c EntityClass) String() string {
	switch c {
	case ClassPlayer:
		return "player"
	case ClassAlly:
		return "ally"
	case ClassHostile:
		return "hostile"
	case ClassHost:
		return "host"
	default:
		return "neutral"
	}
}
