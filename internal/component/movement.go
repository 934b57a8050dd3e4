// internal/component/movement.go
package component

import "github.com/WChurchill/qualified-immunity/pkg/geom"

// Transform is the world placement of an entity.
type Transform struct {
	Position geom.Vec2
	Rotation float64 // radians
}

// Velocity is integrated into Transform.Position by the movement system.
type Velocity struct {
	Value geom.Vec2
}

// Speed holds the current and default scalar speed. Boost and duplication modify
// Current; Default never changes.
type Speed struct {
	Current float64
	Default float64
}

func NewSpeed(value float64) *Speed {
	return &Speed{Current: value, Default: value}
}

// TurnRate limits how fast a steering entity can change heading, rad/s.
type TurnRate struct {
	Value float64
}

// Directional marks entities whose rotation follows their velocity.
type Directional struct{}
