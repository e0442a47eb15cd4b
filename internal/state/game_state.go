// internal/state/game_state.go
package state

import (
	"image/color"
	"strings"
	"time"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/economy"
	"go-siege-defense/internal/interfaces"
	"go-siege-defense/internal/render"
	"go-siege-defense/internal/ui"
	"go-siege-defense/pkg/isogrid"
	pkgrender "go-siege-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const clickCooldown = 150 * time.Millisecond

// GameState - состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	catalog  *defs.Catalog
	opts     app.Options
	extra    []interfaces.Presenter
	iso      *pkgrender.IsoRenderer
	entities *render.EntityRenderer
	effects  *render.EffectLayer

	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	waveIndicator *ui.WaveIndicator
	lives         *ui.LivesIndicator
	spellBar      *ui.SpellBar
	inspector     *ui.Inspector
	buildBar      *ui.BuildBar

	snapshot      app.Snapshot
	lastClickTime time.Time
}

// NewGameState создаёт сессию и подключает к ней рендер и переданные
// презентеры (звук и т.п.).
func NewGameState(sm *StateMachine, catalog *defs.Catalog, opts app.Options, presenters ...interfaces.Presenter) (*GameState, error) {
	gameLogic, err := app.NewGame(catalog, opts)
	if err != nil {
		return nil, err
	}

	mapColors := &pkgrender.MapColors{
		BackgroundColor: config.BackgroundColor,
		TileColor:       config.TileColor,
		TileAltColor:    config.TileAltColor,
		GridLineColor:   config.GridLineColor,
		LabelColor:      config.TextLightColor,
		StrokeWidth:     1,
	}
	iso := pkgrender.NewIsoRenderer(gameLogic.Projection(), config.MapSize, config.ScreenWidth, config.ScreenHeight, ui.DefaultFace, mapColors)
	iso.RenderMapImage(map[isogrid.Cell]color.RGBA{
		{Col: config.SpawnCol, Row: config.SpawnRow}: config.SpawnColor,
	})

	gs := &GameState{
		sm:            sm,
		game:          gameLogic,
		catalog:       catalog,
		opts:          opts,
		extra:         presenters,
		iso:           iso,
		entities:      render.NewEntityRenderer(iso),
		effects:       render.NewEffectLayer(),
		indicator:     ui.NewStateIndicator(config.ScreenWidth-40, config.HUDHeight+40, 16),
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-110, config.HUDHeight/2, config.SpeedButtonSize/2, config.SpeedButtonColors),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-50, config.HUDHeight/2, config.SpeedButtonSize/2, config.WaveStateColor, config.BuildStateColor),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, config.HUDHeight/2+4),
		lives:         ui.NewLivesIndicator(16, config.HUDHeight+10),
		spellBar:      ui.NewSpellBar(config.ScreenWidth-370, config.ScreenHeight-config.BuildBarHeight+10),
		inspector:     ui.NewInspector(config.ScreenWidth-240, config.HUDHeight+80),
		buildBar:      ui.NewBuildBar(catalog, 16, config.ScreenHeight-config.BuildBarHeight+10, 120, 44),
	}

	gameLogic.AddPresenter(gs.effects)
	gameLogic.AddPresenter(gs.inspector)
	for _, p := range presenters {
		gameLogic.AddPresenter(p)
	}
	gameLogic.Start()
	gs.snapshot = gameLogic.Snapshot()
	return gs, nil
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

// GetGame нужен паузе и экрану конца игры.
func (g *GameState) GetGame() *app.Game { return g.game }

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return
	}

	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.handleMapClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.Deselect()
	}

	g.game.Update(deltaTime)
	g.effects.Update(deltaTime * g.game.Clock.Scale())
	g.snapshot = g.game.Snapshot()

	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) handleKeys() {
	numberKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}
	for i, k := range numberKeys {
		if inpututil.IsKeyJustPressed(k) {
			if key, ok := g.buildBar.KeyForHotkey(i + 1); ok {
				g.game.SetBuildMode(key)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.game.UpgradeSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.game.SellSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.Deselect()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	for _, spell := range g.snapshot.Spells {
		if k, ok := spellKey(spell.Hotkey); ok && inpututil.IsKeyJustPressed(k) {
			g.game.CastSpell(spell.ID)
		}
	}
}

// spellKey переводит букву из каталога в клавишу ebiten.
func spellKey(hotkey string) (ebiten.Key, bool) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(strings.ToUpper(hotkey))); err != nil {
		return 0, false
	}
	return k, true
}

// handleUIClick возвращает true, если клик съел какой-то элемент UI.
func (g *GameState) handleUIClick(x, y int) bool {
	if time.Since(g.lastClickTime) < clickCooldown {
		return true
	}
	handled := true
	switch {
	case g.speedButton.IsClicked(x, y):
		g.game.SetSpeed(config.SpeedMultipliers[g.speedButton.ToggleState()])
	case g.pauseButton.IsClicked(x, y):
		g.pause()
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.startWave()
	case g.inspector.Contains(x, y):
		switch g.inspector.HandleClick(x, y) {
		case ui.InspectorUpgrade:
			g.game.UpgradeSelected()
		case ui.InspectorSell:
			g.game.SellSelected()
		case ui.InspectorClose:
			g.game.Deselect()
		}
	default:
		if key, ok := g.buildBar.KeyAt(x, y); ok {
			g.game.SetBuildMode(key)
		} else if i := g.spellBar.SpellAt(x, y, len(g.snapshot.Spells)); i >= 0 {
			g.game.CastSpell(g.snapshot.Spells[i].ID)
		} else {
			handled = false
		}
	}
	if handled {
		g.lastClickTime = time.Now()
	}
	return handled
}

// handleMapClick: по строению - выбор, по пустой клетке - постройка.
func (g *GameState) handleMapClick(x, y int) {
	cell := g.game.Projection().WorldToGrid(float64(x), float64(y))
	if !cell.InBounds(config.MapSize) {
		g.game.Deselect()
		return
	}
	if g.game.SelectStructureAt(cell.Col, cell.Row) {
		return
	}
	if result := g.game.PlaceBuildingAt(cell.Col, cell.Row); result != app.PlaceOK {
		g.game.Logger().Printf("place %s at %v: %s", g.game.BuildMode(), cell, result)
	}
}

func (g *GameState) startWave() {
	if g.game.Phase() == component.PhaseBuilding {
		g.game.StartWaveNow()
	}
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// hoverCell - клетка под курсором и можно ли туда строить.
func (g *GameState) hoverCell() (isogrid.Cell, bool, bool) {
	x, y := ebiten.CursorPosition()
	cell := g.game.Projection().WorldToGrid(float64(x), float64(y))
	if !cell.InBounds(config.MapSize) || y < config.HUDHeight || y > config.ScreenHeight-config.BuildBarHeight {
		return cell, false, false
	}
	def, ok := g.catalog.Structure(g.game.BuildMode())
	valid := ok && g.game.Phase() == component.PhaseBuilding &&
		!g.game.Grid.IsOccupied(cell) &&
		g.game.Ledger.CanAfford(economy.Gold, def.Cost)
	return cell, true, valid
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := &g.snapshot
	g.iso.Draw(screen)

	if cell, onMap, valid := g.hoverCell(); onMap {
		clr := config.HoverInvalidColor
		if valid {
			clr = config.HoverValidColor
		}
		g.iso.FillTile(screen, cell, clr)
	}

	g.entities.Draw(screen, snap)
	g.effects.Draw(screen)

	cursorX, cursorY := ebiten.CursorPosition()
	ui.DrawResourceBar(screen, ui.DefaultFace, snap)
	g.waveIndicator.Draw(screen, ui.DefaultFace, snap.WaveNumber, snap.TotalWaves)
	g.lives.Draw(screen, snap.Stats.Lives)

	stateColor := config.BuildStateColor
	progress := 0.0
	if snap.Phase == component.PhaseCombat {
		stateColor = config.WaveStateColor
	} else if total := g.game.ECS.Wave.BuildDuration; total > 0 {
		progress = float64(snap.TimeLeft) / float64(total)
	}
	g.indicator.Draw(screen, stateColor, progress)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	g.buildBar.Draw(screen, ui.DefaultFace, g.catalog, snap.BuildKey, snap.Stats.Gold, cursorX, cursorY)
	g.spellBar.Draw(screen, ui.DefaultFace, snap.Spells, snap.Stats.Mana)
	g.inspector.Draw(screen, ui.DefaultFace, snap.Stats.Gold, cursorX, cursorY)
}

func (g *GameState) Exit() {}
