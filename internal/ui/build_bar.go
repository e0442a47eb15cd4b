// internal/ui/build_bar.go
package ui

import (
	"fmt"
	"image"

	"go-siege-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// BuildBar - ряд кнопок строений с горячими клавишами 1..N.
type BuildBar struct {
	Keys    []string
	Buttons []*Button
}

func NewBuildBar(catalog *defs.Catalog, x, y, buttonWidth, buttonHeight int) *BuildBar {
	bar := &BuildBar{}
	for i, key := range catalog.BuildKeys() {
		def, _ := catalog.Structure(key)
		rect := image.Rect(x+i*(buttonWidth+6), y, x+i*(buttonWidth+6)+buttonWidth, y+buttonHeight)
		label := fmt.Sprintf("%d %s %d", i+1, def.Name, def.Cost)
		bar.Keys = append(bar.Keys, key)
		bar.Buttons = append(bar.Buttons, NewButton(rect, label))
	}
	return bar
}

// KeyAt возвращает ключ строения под курсором.
func (b *BuildBar) KeyAt(x, y int) (string, bool) {
	for i, btn := range b.Buttons {
		if btn.Contains(x, y) {
			return b.Keys[i], true
		}
	}
	return "", false
}

// KeyForHotkey - клавиша 1..N в ключ строения.
func (b *BuildBar) KeyForHotkey(n int) (string, bool) {
	if n < 1 || n > len(b.Keys) {
		return "", false
	}
	return b.Keys[n-1], true
}

// Draw подсвечивает выбранный режим и гасит недоступные по золоту.
func (b *BuildBar) Draw(screen *ebiten.Image, face font.Face, catalog *defs.Catalog, selected string, gold, cursorX, cursorY int) {
	for i, btn := range b.Buttons {
		key := b.Keys[i]
		btn.Active = key == selected
		def, _ := catalog.Structure(key)
		btn.Disabled = def.Cost > gold
		btn.Draw(screen, face, cursorX, cursorY)
	}
}
