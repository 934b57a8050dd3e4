package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/WChurchill/qualified-immunity/internal/config"
)

// WaveIndicator shows the current level in roman numerals.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label returns the text drawn for a level: "Level" followed by the roman
// numeral, or just "Level" before the first wave.
func Label(level int) string {
	if level <= 0 {
		return "Level"
	}
	return "Level " + toRoman(level)
}

// Draw renders the label centred on X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, level int, face font.Face) {
	if face == nil {
		return
	}
	label := Label(level)

	textColor := i.Color
	if level > 0 && level%10 == 0 {
		textColor = config.VirusColor
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2
	y := i.Y

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, y, textColor)
}
