// internal/ui/spell_bar.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SpellBar рисует кнопки заклинаний с полосой перезарядки.
// Недоступная горячая клавиша перечёркивается.
type SpellBar struct {
	X, Y          int
	SlotWidth     int
	SlotHeight    int
	Gap           int
	ProgressColor color.Color
}

func NewSpellBar(x, y int) *SpellBar {
	return &SpellBar{
		X:             x,
		Y:             y,
		SlotWidth:     110,
		SlotHeight:    44,
		Gap:           8,
		ProgressColor: config.TextManaColor,
	}
}

func (b *SpellBar) slotRect(i int) image.Rectangle {
	x := b.X + i*(b.SlotWidth+b.Gap)
	return image.Rect(x, b.Y, x+b.SlotWidth, b.Y+b.SlotHeight)
}

// SpellAt возвращает индекс слота под курсором или -1.
func (b *SpellBar) SpellAt(x, y, count int) int {
	for i := 0; i < count; i++ {
		if image.Pt(x, y).In(b.slotRect(i)) {
			return i
		}
	}
	return -1
}

func (b *SpellBar) Draw(screen *ebiten.Image, face font.Face, spells []app.SpellView, mana int) {
	for i, s := range spells {
		r := b.slotRect(i)
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())

		vector.DrawFilledRect(screen, x, y, w, h, config.PanelColor, false)
		// Полоса перезарядки снизу
		vector.DrawFilledRect(screen, x, y+h-4, w*float32(s.Progress), 4, b.ProgressColor, false)
		border := color.RGBA{100, 116, 139, 255}
		if s.Ready && mana >= s.Cost {
			border = config.SelectionColor
		}
		vector.StrokeRect(screen, x, y, w, h, 1, border, false)

		hotkey := fmt.Sprintf("[%s]", s.Hotkey)
		text.Draw(screen, hotkey, face, r.Min.X+6, r.Min.Y+16, config.TextLightColor)
		if !s.Ready || mana < s.Cost {
			hb := text.BoundString(face, hotkey)
			ly := float32(r.Min.Y + 16 + hb.Min.Y/2)
			vector.StrokeLine(screen, float32(r.Min.X+4), ly, float32(r.Min.X+8+hb.Dx()), ly, 2, config.TextLivesColor, false)
		}
		text.Draw(screen, s.Name, face, r.Min.X+32, r.Min.Y+16, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("%d mana", s.Cost), face, r.Min.X+6, r.Min.Y+34, config.TextManaColor)
	}
}
