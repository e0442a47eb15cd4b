// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"go-siege-defense/internal/config"
	"go-siege-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог поверх замершей карты; Space - в меню.
type GameOverState struct {
	sm   *StateMachine
	last *GameState
}

func NewGameOverState(sm *StateMachine, last *GameState) *GameOverState {
	return &GameOverState{sm: sm, last: last}
}

func (s *GameOverState) Enter() {
	game := s.last.game
	game.Logger().Printf("game over: victory=%v wave=%d stats=%+v", game.Victory(), s.last.snapshot.WaveNumber, s.last.snapshot.Stats)
}

func (s *GameOverState) Update(deltaTime float64) {
	s.last.effects.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewMenuState(s.sm, s.last.catalog, s.last.opts, s.last.extra...))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)
	title, clr := "DEFEAT", config.TextLivesColor
	if s.last.game.Victory() {
		title, clr = "VICTORY", config.TextGoldColor
	}
	lines := []string{title, fmt.Sprintf("Waves: %d / %d", s.last.snapshot.WaveNumber, s.last.snapshot.TotalWaves), "Press SPACE"}
	y := config.ScreenHeight/2 - 20
	for i, line := range lines {
		c := color.Color(config.TextLightColor)
		if i == 0 {
			c = clr
		}
		b := text.BoundString(ui.DefaultFace, line)
		text.Draw(screen, line, ui.DefaultFace, (config.ScreenWidth-b.Dx())/2, y, c)
		y += 20
	}
}

func (s *GameOverState) Exit() {}
