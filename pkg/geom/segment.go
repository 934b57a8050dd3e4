package geom

import "math"

// ClosestOnSegment returns the point on segment ab closest to p.
func ClosestOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	denom := ab.LenSq()
	if denom == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / denom
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Scale(t))
}

// PointSegmentDistance returns the distance from p to segment ab.
func PointSegmentDistance(p, a, b Vec2) float64 {
	return p.Distance(ClosestOnSegment(p, a, b))
}

// SegmentsIntersect reports whether segments p1p2 and q1q2 share a point.
func SegmentsIntersect(p1, p2, q1, q2 Vec2) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}

// SegmentDistance returns the shortest distance between segments p1p2 and q1q2.
func SegmentDistance(p1, p2, q1, q2 Vec2) float64 {
	if SegmentsIntersect(p1, p2, q1, q2) {
		return 0
	}
	return math.Min(
		math.Min(PointSegmentDistance(p1, q1, q2), PointSegmentDistance(p2, q1, q2)),
		math.Min(PointSegmentDistance(q1, p1, p2), PointSegmentDistance(q2, p1, p2)),
	)
}

func orient(a, b, c Vec2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment assumes c is collinear with ab.
func onSegment(a, b, c Vec2) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}
