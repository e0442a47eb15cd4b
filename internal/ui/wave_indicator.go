// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-siege-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.BuildStateColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
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

// waveLabel - "III / V"; до первой волны номер не показывается.
func waveLabel(waveNumber, totalWaves int) string {
	if waveNumber <= 0 {
		return ""
	}
	return fmt.Sprintf("%s / %s", toRoman(waveNumber), toRoman(totalWaves))
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber, totalWaves int) {
	label := waveLabel(waveNumber, totalWaves)
	if label == "" {
		return
	}

	// Последняя волна - красным
	textColor := i.Color
	if waveNumber == totalWaves {
		textColor = config.WaveStateColor
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2
	drawOutlinedText(screen, label, face, x, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}
