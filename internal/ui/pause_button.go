// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton is a round pause/play toggle that pulses briefly when clicked.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// play triangle
		var path vector.Path
		path.MoveTo(b.X-size, b.Y-size*1.2)
		path.LineTo(b.X-size, b.Y+size*1.2)
		path.LineTo(b.X+size, b.Y)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		r, g, bl, a := b.PlayColor.RGBA()
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR = float32(r) / 0xffff
			vs[i].ColorG = float32(g) / 0xffff
			vs[i].ColorB = float32(bl) / 0xffff
			vs[i].ColorA = float32(a) / 0xffff
		}
		screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
		return
	}

	// two bars
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, 1, color.White, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, b.X+spacing/2, b.Y-height/2, width, height, 1, color.White, true)
}

// IsClicked reports a left click inside the button circle this frame.
func (b *PauseButton) IsClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	dx, dy := float32(mx)-b.X, float32(my)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*4
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(3, 3)
		pixel.Fill(color.White)
	}
	return pixel
}
