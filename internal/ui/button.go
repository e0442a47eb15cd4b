// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Active     bool // подсвечена рамкой (выбранный режим)
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  color.White,
		BgColor:    color.RGBA{51, 65, 85, 255},
		HoverColor: color.RGBA{71, 85, 105, 255},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := b.BgColor
	if !b.Disabled && b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	if b.Disabled {
		bg.A = 120
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)

	border := color.RGBA{100, 116, 139, 255}
	width := float32(1)
	if b.Active {
		border = color.RGBA{251, 191, 36, 255}
		width = 2
	}
	vector.StrokeRect(screen, x, y, w, h, width, border, true)

	textColor := b.TextColor
	if b.Disabled {
		textColor = color.RGBA{148, 163, 184, 255}
	}
	drawCenteredText(screen, b.Text, face, b.Rect, textColor)
}
