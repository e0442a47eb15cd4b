// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// phaseLabel - подпись фазы для верхней панели.
func phaseLabel(snap *app.Snapshot) string {
	switch {
	case snap.Victory:
		return "VICTORY"
	case snap.Defeat:
		return "DEFEAT"
	case snap.Phase == component.PhaseBuilding:
		return fmt.Sprintf("BUILD %ds", snap.TimeLeft)
	}
	return "WAVE"
}

// DrawResourceBar рисует верхнюю полосу: золото, мана, жизни и фаза.
func DrawResourceBar(screen *ebiten.Image, face font.Face, snap *app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), config.HUDHeight, config.PanelColor, false)
	baseline := config.HUDHeight/2 + 4
	text.Draw(screen, fmt.Sprintf("Gold %d", snap.Stats.Gold), face, 16, baseline, config.TextGoldColor)
	text.Draw(screen, fmt.Sprintf("Mana %d", snap.Stats.Mana), face, 120, baseline, config.TextManaColor)
	text.Draw(screen, fmt.Sprintf("Lives %d", snap.Stats.Lives), face, 224, baseline, config.TextLivesColor)
	text.Draw(screen, phaseLabel(snap), face, 330, baseline, config.TextLightColor)
	if snap.Paused {
		text.Draw(screen, "PAUSED", face, 460, baseline, config.TextGoldColor)
	}
}
