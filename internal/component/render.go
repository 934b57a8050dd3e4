// internal/component/render.go
package component

// RenderKind tells the rendering collaborator which sprite to use.
type RenderKind int

const (
	RenderNone RenderKind = iota
	RenderPlayer
	RenderAlly
	RenderVirus
	RenderWallCell
	RenderDebris
)

// Renderable is a visual hint only; the simulation never reads it.
type Renderable struct {
	Kind  RenderKind
	Size  float64
	FlipX bool
	FlipY bool
}
