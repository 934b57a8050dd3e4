// internal/utils/math.go
package utils

import (
	"math"

	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// RotateTowards turns the direction of from towards the direction of to by at
// most maxAngle radians along the shorter arc. The length of from is kept.
// A zero from or to is returned unchanged.
func RotateTowards(from, to geom.Vec2, maxAngle float64) geom.Vec2 {
	if from.IsZero() || to.IsZero() {
		return from
	}
	diff := NormalizeAngle(to.Angle() - from.Angle())
	if math.Abs(diff) <= maxAngle {
		return geom.FromAngle(to.Angle()).Scale(from.Len())
	}
	return from.Rotate(math.Copysign(maxAngle, diff))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
