// internal/ui/inspector.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"go-siege-defense/internal/config"
	"go-siege-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// InspectorAction - что нажали в панели.
type InspectorAction int

const (
	InspectorNone InspectorAction = iota
	InspectorUpgrade
	InspectorSell
	InspectorClose
)

// Inspector - панель выбранного строения с кнопками Upgrade и Sell.
// Реализует Presenter: содержимое приходит через OnTowerSelected.
type Inspector struct {
	interfaces.NopPresenter
	X, Y          int
	Width, Height int
	IsVisible     bool
	Stats         interfaces.TowerStats

	upgradeButton *Button
	sellButton    *Button
	closeButton   *Button
}

func NewInspector(x, y int) *Inspector {
	p := &Inspector{X: x, Y: y, Width: 220, Height: 200}
	p.upgradeButton = NewButton(image.Rect(x+10, y+p.Height-40, x+105, y+p.Height-12), "Upgrade")
	p.sellButton = NewButton(image.Rect(x+115, y+p.Height-40, x+p.Width-10, y+p.Height-12), "Sell")
	p.closeButton = NewButton(image.Rect(x+p.Width-24, y+6, x+p.Width-6, y+24), "x")
	p.upgradeButton.BgColor = color.RGBA{22, 101, 52, 255}
	p.upgradeButton.HoverColor = color.RGBA{21, 128, 61, 255}
	p.sellButton.BgColor = color.RGBA{153, 27, 27, 255}
	p.sellButton.HoverColor = color.RGBA{185, 28, 28, 255}
	return p
}

func (p *Inspector) OnTowerSelected(stats interfaces.TowerStats) {
	p.Stats = stats
	p.IsVisible = true
}

func (p *Inspector) OnTowerDeselected() {
	p.IsVisible = false
}

// Contains - клик по панели не должен уходить в карту.
func (p *Inspector) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height))
}

// HandleClick возвращает действие для клика внутри панели.
func (p *Inspector) HandleClick(x, y int) InspectorAction {
	if !p.Contains(x, y) {
		return InspectorNone
	}
	switch {
	case p.closeButton.Contains(x, y):
		return InspectorClose
	case p.Stats.Upgradable && p.upgradeButton.Contains(x, y):
		return InspectorUpgrade
	case p.Stats.Sellable && p.sellButton.Contains(x, y):
		return InspectorSell
	}
	return InspectorNone
}

// inspectorLines - строки характеристик; у стен и генераторов урона нет.
func inspectorLines(s interfaces.TowerStats) []string {
	lines := []string{
		fmt.Sprintf("%s  lvl %d", s.Name, s.Level),
		fmt.Sprintf("HP %d/%d", s.Health, s.MaxHealth),
	}
	if s.Damage > 0 {
		dmg := fmt.Sprintf("Damage %d", s.Damage)
		if s.Multiplier > 1 {
			dmg += fmt.Sprintf(" (x%.1f)", s.Multiplier)
		}
		lines = append(lines, dmg,
			fmt.Sprintf("Range %.0f", s.Range),
			fmt.Sprintf("Cooldown %dms", s.CooldownMs))
	}
	if s.Upgradable {
		lines = append(lines, fmt.Sprintf("Upgrade: %d gold", s.UpgradeCost))
	}
	if s.Sellable {
		lines = append(lines, fmt.Sprintf("Sell: +%d gold", s.SellValue))
	}
	return lines
}

func (p *Inspector) Draw(screen *ebiten.Image, face font.Face, gold, cursorX, cursorY int) {
	if !p.IsVisible {
		return
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), config.PanelColor, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 1, config.SelectionColor, false)

	y := p.Y + 20
	for i, line := range inspectorLines(p.Stats) {
		clr := color.Color(config.TextLightColor)
		if i == 0 {
			clr = config.TextGoldColor
		}
		text.Draw(screen, line, face, p.X+10, y, clr)
		y += 18
	}

	p.upgradeButton.Disabled = !p.Stats.Upgradable || gold < p.Stats.UpgradeCost
	p.sellButton.Disabled = !p.Stats.Sellable
	p.upgradeButton.Draw(screen, face, cursorX, cursorY)
	p.sellButton.Draw(screen, face, cursorX, cursorY)
	p.closeButton.Draw(screen, face, cursorX, cursorY)
}
