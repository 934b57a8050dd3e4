// pkg/render/arena_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// ArenaRenderer draws world-space primitives through a camera centred on a
// world point. World y grows upwards, screen y downwards.
type ArenaRenderer struct {
	screenWidth  int
	screenHeight int
	camera       geom.Vec2
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	Palette      Palette
}

func NewArenaRenderer(screenWidth, screenHeight int, face font.Face, palette Palette) *ArenaRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &ArenaRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 16),
		fillIs:       make([]uint16, 0, 16),
		strokeVs:     make([]ebiten.Vertex, 0, 32),
		strokeIs:     make([]uint16, 0, 32),
		fontFace:     face,
		Palette:      palette,
	}
}

// Camera returns the world point at the centre of the screen.
func (r *ArenaRenderer) Camera() geom.Vec2 {
	return r.camera
}

// SetCamera jumps the camera to center.
func (r *ArenaRenderer) SetCamera(center geom.Vec2) {
	r.camera = center
}

// FollowCamera moves the camera towards target, closing rate of the gap per
// second.
func (r *ArenaRenderer) FollowCamera(target geom.Vec2, deltaTime, rate float64) {
	t := 1 - math.Exp(-rate*deltaTime)
	r.camera = r.camera.Add(target.Sub(r.camera).Scale(t))
}

// ToScreen converts a world point to screen pixels.
func (r *ArenaRenderer) ToScreen(p geom.Vec2) (float32, float32) {
	x := p.X - r.camera.X + float64(r.screenWidth)/2
	y := float64(r.screenHeight)/2 - (p.Y - r.camera.Y)
	return float32(x), float32(y)
}

// Visible reports whether a circle around p may show on screen.
func (r *ArenaRenderer) Visible(p geom.Vec2, radius float64) bool {
	x, y := r.ToScreen(p)
	rr := float32(radius)
	return x+rr >= 0 && y+rr >= 0 && x-rr <= float32(r.screenWidth) && y-rr <= float32(r.screenHeight)
}

func (r *ArenaRenderer) FillCircle(target *ebiten.Image, center geom.Vec2, radius float64, clr color.Color) {
	x, y := r.ToScreen(center)
	vector.DrawFilledCircle(target, x, y, float32(radius), clr, true)
}

func (r *ArenaRenderer) StrokeCircle(target *ebiten.Image, center geom.Vec2, radius float64, clr color.Color) {
	x, y := r.ToScreen(center)
	vector.StrokeCircle(target, x, y, float32(radius), r.Palette.StrokeWidth, clr, true)
}

// StrokeSegment draws a thick line with round caps, used for capsules.
func (r *ArenaRenderer) StrokeSegment(target *ebiten.Image, a, b geom.Vec2, width float64, clr color.Color) {
	ax, ay := r.ToScreen(a)
	bx, by := r.ToScreen(b)
	vector.StrokeLine(target, ax, ay, bx, by, float32(width), clr, true)
	vector.DrawFilledCircle(target, ax, ay, float32(width/2), clr, true)
	vector.DrawFilledCircle(target, bx, by, float32(width/2), clr, true)
}

// FillPolygon fills a convex polygon given in world space and outlines it.
func (r *ArenaRenderer) FillPolygon(target *ebiten.Image, points []geom.Vec2, fill, outline color.RGBA) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	for i, p := range points {
		x, y := r.ToScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.Palette.StrokeWidth,
	})
	paint(r.strokeVs, outline)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawLabel centres text on a world point.
func (r *ArenaRenderer) DrawLabel(target *ebiten.Image, label string, p geom.Vec2, clr color.Color) {
	if r.fontFace == nil {
		return
	}
	x, y := r.ToScreen(p)
	bounds := text.BoundString(r.fontFace, label)
	text.Draw(target, label, r.fontFace, int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2, clr)
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
