// internal/component/collider.go
package component

import (
	"math"
	"slices"

	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// ShapeKind selects which fields of Shape are meaningful.
type ShapeKind int

const (
	ShapeUnknown ShapeKind = iota
	ShapeCircle
	ShapeRectangle
	ShapeCapsule
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	case ShapeCapsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// Shape is a collision shape in the entity's local frame.
type Shape struct {
	Kind ShapeKind
	// Radius is used by circles and capsules.
	Radius float64
	// HalfExtents is used by rectangles.
	HalfExtents geom.Vec2
	// A and B are the capsule segment endpoints.
	A, B geom.Vec2
}

// Circle returns a circle shape centred on the entity origin.
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Rectangle returns a rectangle of the given full width and height centred on
// the entity origin.
func Rectangle(width, height float64) Shape {
	return Shape{Kind: ShapeRectangle, HalfExtents: geom.V(width/2, height/2)}
}

// Capsule returns a capsule swept along a..b.
func Capsule(a, b geom.Vec2, radius float64) Shape {
	return Shape{Kind: ShapeCapsule, A: a, B: b, Radius: radius}
}

// BoundingRadius is the radius of a circle around the entity origin that
// contains the whole shape at any rotation.
func (s Shape) BoundingRadius() float64 {
	switch s.Kind {
	case ShapeCircle:
		return s.Radius
	case ShapeRectangle:
		return s.HalfExtents.Len()
	case ShapeCapsule:
		return math.Max(s.A.Len(), s.B.Len()) + s.Radius
	default:
		return 0
	}
}

// Collider holds a shape and the set of entities touching it this tick.
type Collider struct {
	Shape    Shape
	Contacts map[types.EntityID]struct{}
}

// NewCollider returns a collider with an empty contact set.
func NewCollider(shape Shape) *Collider {
	return &Collider{
		Shape:    shape,
		Contacts: make(map[types.EntityID]struct{}),
	}
}

// ClearContacts empties the contact set, keeping its storage.
func (c *Collider) ClearContacts() {
	if c.Contacts == nil {
		c.Contacts = make(map[types.EntityID]struct{})
		return
	}
	clear(c.Contacts)
}

func (c *Collider) AddContact(id types.EntityID) {
	if c.Contacts == nil {
		c.Contacts = make(map[types.EntityID]struct{})
	}
	c.Contacts[id] = struct{}{}
}

func (c *Collider) Touching(id types.EntityID) bool {
	_, ok := c.Contacts[id]
	return ok
}

// ContactIDs returns the contact set in ascending id order.
func (c *Collider) ContactIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(c.Contacts))
	for id := range c.Contacts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
