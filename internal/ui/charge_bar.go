// internal/ui/charge_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const borderWidth = 1

// ChargeBar shows a charge meter with a key hint next to it.
type ChargeBar struct {
	X, Y          float32
	Width, Height float32
	Fill          color.RGBA
	Border        color.Color
	Hint          string
}

func NewChargeBar(x, y, width, height float32, fill color.RGBA, hint string) *ChargeBar {
	return &ChargeBar{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Fill:   fill,
		Border: color.White,
		Hint:   hint,
	}
}

// Draw renders the bar filled to ratio, clamped to [0, 1].
func (b *ChargeBar) Draw(screen *ebiten.Image, ratio float64, face font.Face) {
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, borderWidth, b.Border, true)

	if ratio > 1 {
		ratio = 1
	}
	fillWidth := float32(float64(b.Width-borderWidth*2) * ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, b.X+borderWidth, b.Y+borderWidth, fillWidth, b.Height-borderWidth*2, b.Fill, true)
	}

	if face != nil && b.Hint != "" {
		bounds := text.BoundString(face, b.Hint)
		text.Draw(screen, b.Hint, face, int(b.X+b.Width)+8, int(b.Y+b.Height/2)+bounds.Dy()/2, b.Border)
	}
}
