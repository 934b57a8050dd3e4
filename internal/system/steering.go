// internal/system/steering.go
package system

import (
	"github.com/WChurchill/qualified-immunity/internal/utils"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

const (
	arriveDistance = 0.01
	stillSpeed     = 0.01
)

// SteerParams are the per-entity limits used by Steer.
type SteerParams struct {
	Speed              float64
	TurnRate           float64 // rad/s
	FastRotateDistance float64
}

// Steer returns the new velocity of an entity at pos chasing target.
// Close to the target, or from a standstill, the heading snaps to the
// bearing; otherwise it turns by at most TurnRate*deltaTime.
func Steer(pos, target, velocity geom.Vec2, p SteerParams, deltaTime float64) geom.Vec2 {
	toTarget := target.Sub(pos)
	dist := toTarget.Len()
	if dist < arriveDistance {
		return geom.Vec2{}
	}
	bearing := toTarget.Scale(1 / dist)
	if dist < p.FastRotateDistance || velocity.Len() < stillSpeed {
		return bearing.Scale(p.Speed)
	}
	turned := utils.RotateTowards(velocity, bearing, p.TurnRate*deltaTime)
	return turned.NormalizeOrZero().Scale(p.Speed)
}

// Seek returns a velocity heading straight at target, or zero on arrival.
func Seek(pos, target geom.Vec2, speed float64) geom.Vec2 {
	toTarget := target.Sub(pos)
	if toTarget.Len() < arriveDistance {
		return geom.Vec2{}
	}
	return toTarget.NormalizeOrZero().Scale(speed)
}
