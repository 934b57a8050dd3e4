package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2(t *testing.T) {
	t.Run("Arithmetic", func(t *testing.T) {
		a, b := V(1, 2), V(3, -1)
		assert.Equal(t, V(4, 1), a.Add(b))
		assert.Equal(t, V(-2, 3), a.Sub(b))
		assert.Equal(t, V(2, 4), a.Scale(2))
		assert.Equal(t, 1.0, a.Dot(b))
		assert.Equal(t, -7.0, a.Cross(b))
		assert.InDelta(t, 5.0, V(3, 4).Len(), 1e-12)
	})

	t.Run("NormalizeOrZero", func(t *testing.T) {
		n := V(0, 5).NormalizeOrZero()
		assert.InDelta(t, 0.0, n.X, 1e-12)
		assert.InDelta(t, 1.0, n.Y, 1e-12)
		assert.True(t, V(0, 0).NormalizeOrZero().IsZero())
	})

	t.Run("Rotate", func(t *testing.T) {
		r := V(1, 0).Rotate(math.Pi / 2)
		assert.InDelta(t, 0.0, r.X, 1e-12)
		assert.InDelta(t, 1.0, r.Y, 1e-12)
		assert.InDelta(t, math.Pi/2, r.Angle(), 1e-12)
	})
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Vec2
		q1, q2   Vec2
		cross    bool
		distance float64
	}{
		{"crossing", V(-1, 0), V(1, 0), V(0, -1), V(0, 1), true, 0},
		{"parallel", V(0, 0), V(4, 0), V(0, 2), V(4, 2), false, 2},
		{"touching end", V(0, 0), V(1, 0), V(1, 0), V(1, 5), true, 0},
		{"collinear apart", V(0, 0), V(1, 0), V(3, 0), V(4, 0), false, 2},
		{"skew", V(0, 0), V(1, 1), V(3, 0), V(3, -2), false, math.Sqrt(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.cross, SegmentsIntersect(tt.p1, tt.p2, tt.q1, tt.q2))
			assert.InDelta(t, tt.distance, SegmentDistance(tt.p1, tt.p2, tt.q1, tt.q2), 1e-9)
		})
	}

	t.Run("PointSegmentDistance", func(t *testing.T) {
		assert.InDelta(t, 1.0, PointSegmentDistance(V(0, 1), V(-1, 0), V(1, 0)), 1e-12)
		assert.InDelta(t, 5.0, PointSegmentDistance(V(4, 4), V(0, 0), V(1, 0)), 1e-12)
		// degenerate segment
		assert.InDelta(t, 1.0, PointSegmentDistance(V(1, 0), V(0, 0), V(0, 0)), 1e-12)
	})
}
