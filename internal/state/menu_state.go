// internal/state/menu_state.go
package state

import (
	"image"
	"image/color"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/interfaces"
	"go-siege-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState - стартовый экран, Space или кнопка запускают сессию.
type MenuState struct {
	sm          *StateMachine
	catalog     *defs.Catalog
	opts        app.Options
	presenters  []interfaces.Presenter
	startButton *ui.Button
	err         error
}

func NewMenuState(sm *StateMachine, catalog *defs.Catalog, opts app.Options, presenters ...interfaces.Presenter) *MenuState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &MenuState{
		sm:          sm,
		catalog:     catalog,
		opts:        opts,
		presenters:  presenters,
		startButton: ui.NewButton(image.Rect(cx-80, cy+20, cx+80, cy+60), "Start"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.startButton.Contains(x, y)
	}
	if !start {
		return
	}
	gs, err := NewGameState(m.sm, m.catalog, m.opts, m.presenters...)
	if err != nil {
		m.err = err
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "SIEGE DEFENSE"
	bounds := text.BoundString(ui.DefaultFace, title)
	text.Draw(screen, title, ui.DefaultFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-20, config.TextGoldColor)

	x, y := ebiten.CursorPosition()
	m.startButton.Draw(screen, ui.DefaultFace, x, y)
	if m.err != nil {
		text.Draw(screen, m.err.Error(), ui.DefaultFace, 16, config.ScreenHeight-20, color.RGBA{239, 68, 68, 255})
	}
}

func (m *MenuState) Exit() {}
