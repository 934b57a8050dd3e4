// internal/system/shapes.go
package system

import (
	"math"

	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// contactEpsilon absorbs rounding from rotating shapes into world space so
// that touching shapes still count as overlapping.
const contactEpsilon = 1e-9

// worldShape is a collider shape placed in world space.
type worldShape struct {
	kind   component.ShapeKind
	center geom.Vec2
	radius float64

	// rectangle half extents and local axes
	half         geom.Vec2
	axisX, axisY geom.Vec2

	// capsule segment
	a, b geom.Vec2
}

func placeShape(shape component.Shape, tr *component.Transform) worldShape {
	ws := worldShape{
		kind:   shape.Kind,
		center: tr.Position,
		radius: shape.Radius,
		half:   shape.HalfExtents,
	}
	switch shape.Kind {
	case component.ShapeRectangle:
		ws.axisX = geom.FromAngle(tr.Rotation)
		ws.axisY = geom.V(-ws.axisX.Y, ws.axisX.X)
	case component.ShapeCapsule:
		ws.a = tr.Position.Add(shape.A.Rotate(tr.Rotation))
		ws.b = tr.Position.Add(shape.B.Rotate(tr.Rotation))
	}
	return ws
}

// Overlaps reports whether two shapes intersect given their transforms.
// Touching counts as overlap. Unknown shape kinds never overlap.
func Overlaps(sa component.Shape, ta *component.Transform, sb component.Shape, tb *component.Transform) bool {
	return overlapWorld(placeShape(sa, ta), placeShape(sb, tb))
}

func overlapWorld(a, b worldShape) bool {
	// order the pair so each combination is handled once
	if a.kind > b.kind {
		a, b = b, a
	}
	switch a.kind {
	case component.ShapeCircle:
		switch b.kind {
		case component.ShapeCircle:
			return a.center.Distance(b.center) <= a.radius+b.radius+contactEpsilon
		case component.ShapeRectangle:
			return b.pointDistance(a.center) <= a.radius+contactEpsilon
		case component.ShapeCapsule:
			return geom.PointSegmentDistance(a.center, b.a, b.b) <= a.radius+b.radius+contactEpsilon
		}
	case component.ShapeRectangle:
		switch b.kind {
		case component.ShapeRectangle:
			return rectanglesOverlap(a, b)
		case component.ShapeCapsule:
			return a.segmentDistance(b.a, b.b) <= b.radius+contactEpsilon
		}
	case component.ShapeCapsule:
		if b.kind == component.ShapeCapsule {
			return geom.SegmentDistance(a.a, a.b, b.a, b.b) <= a.radius+b.radius+contactEpsilon
		}
	}
	return false
}

// toLocal expresses a world point in the rectangle's frame.
func (r worldShape) toLocal(p geom.Vec2) geom.Vec2 {
	d := p.Sub(r.center)
	return geom.V(d.Dot(r.axisX), d.Dot(r.axisY))
}

// pointDistance is the distance from p to the rectangle, 0 inside it.
func (r worldShape) pointDistance(p geom.Vec2) float64 {
	local := r.toLocal(p)
	closest := geom.V(
		math.Max(-r.half.X, math.Min(r.half.X, local.X)),
		math.Max(-r.half.Y, math.Min(r.half.Y, local.Y)),
	)
	return local.Distance(closest)
}

func (r worldShape) corners() [4]geom.Vec2 {
	hx, hy := r.half.X, r.half.Y
	return [4]geom.Vec2{
		geom.V(-hx, -hy),
		geom.V(hx, -hy),
		geom.V(hx, hy),
		geom.V(-hx, hy),
	}
}

// segmentDistance is the distance from segment pq to the rectangle, 0 when
// the segment touches or crosses it.
func (r worldShape) segmentDistance(p, q geom.Vec2) float64 {
	lp, lq := r.toLocal(p), r.toLocal(q)
	dp, dq := r.pointDistance(p), r.pointDistance(q)
	if dp == 0 || dq == 0 {
		return 0
	}
	best := math.Min(dp, dq)
	c := r.corners()
	for i := range c {
		e1, e2 := c[i], c[(i+1)%4]
		if geom.SegmentsIntersect(lp, lq, e1, e2) {
			return 0
		}
		best = math.Min(best, geom.SegmentDistance(lp, lq, e1, e2))
	}
	return best
}

// projectedRadius is the half length of the rectangle's shadow on axis.
func (r worldShape) projectedRadius(axis geom.Vec2) float64 {
	return r.half.X*math.Abs(r.axisX.Dot(axis)) + r.half.Y*math.Abs(r.axisY.Dot(axis))
}

// rectanglesOverlap is a separating axis test over the face normals of both
// rectangles.
func rectanglesOverlap(a, b worldShape) bool {
	d := b.center.Sub(a.center)
	for _, axis := range [4]geom.Vec2{a.axisX, a.axisY, b.axisX, b.axisY} {
		if math.Abs(d.Dot(axis)) > a.projectedRadius(axis)+b.projectedRadius(axis)+contactEpsilon {
			return false
		}
	}
	return true
}
