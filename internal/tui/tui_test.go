package tui

import (
	"io"
	"testing"

	"github.com/gdamore/tcell/v2"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/pkg/isogrid"
)

func newTestGame(t *testing.T) *app.Game {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	opts := app.DefaultOptions()
	opts.LogOutput = io.Discard
	g, err := app.NewGame(catalog, opts)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	g.Start()
	return g
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(100, 30)
	return screen
}

func TestViewDrawsCoreAndSpawn(t *testing.T) {
	g := newTestGame(t)
	screen := newScreen(t)
	defer screen.Fini()

	v := NewView(config.MapSize)
	snap := g.Snapshot()
	v.Draw(screen, &snap, g.Projection(), isogrid.Cell{Col: -1, Row: -1})

	x, y := CellOrigin(isogrid.Cell{Col: config.CoreCol, Row: config.CoreRow})
	if r, _, _, _ := screen.GetContent(x, y); r != '@' {
		t.Errorf("Expected core glyph '@', got %q", r)
	}
	x, y = CellOrigin(isogrid.Cell{Col: config.SpawnCol, Row: config.SpawnRow})
	if r, _, _, _ := screen.GetContent(x, y); r != '.' {
		t.Errorf("Expected spawn cell to be empty ground, got %q", r)
	}
}

func TestControllerPlacesAndSelects(t *testing.T) {
	g := newTestGame(t)
	c := NewController(g)
	c.Cursor = isogrid.Cell{Col: 5, Row: 5}

	c.HandleRune('1')
	if g.BuildMode() != "ARCHER" {
		t.Fatalf("Expected ARCHER build mode, got %s", g.BuildMode())
	}
	c.HandleKey(tcell.KeyEnter)
	if !g.Grid.IsOccupied(isogrid.Cell{Col: 5, Row: 5}) {
		t.Fatal("Expected a structure at (5,5)")
	}
	if _, ok := g.Selected(); ok {
		t.Error("Expected placement to leave nothing selected")
	}

	c.HandleKey(tcell.KeyEnter)
	stats, ok := g.Selected()
	if !ok || stats.Key != "ARCHER" {
		t.Errorf("Expected second Enter to select the archer, got %+v", stats)
	}

	c.HandleRune('s')
	if g.Grid.IsOccupied(isogrid.Cell{Col: 5, Row: 5}) {
		t.Error("Expected 's' to sell the selected structure")
	}
}

func TestControllerCursorStaysOnMap(t *testing.T) {
	g := newTestGame(t)
	c := NewController(g)
	c.Cursor = isogrid.Cell{Col: 0, Row: 0}
	c.HandleKey(tcell.KeyLeft)
	c.HandleRune('k')
	if c.Cursor != (isogrid.Cell{Col: 0, Row: 0}) {
		t.Errorf("Expected cursor to stay at origin, got %v", c.Cursor)
	}
	c.HandleRune('l')
	c.HandleKey(tcell.KeyDown)
	if c.Cursor != (isogrid.Cell{Col: 1, Row: 1}) {
		t.Errorf("Expected cursor at (1,1), got %v", c.Cursor)
	}
}

func TestControllerQuitAndSpeed(t *testing.T) {
	g := newTestGame(t)
	c := NewController(g)
	if c.HandleKey(tcell.KeyEscape) {
		t.Error("Expected Escape to quit")
	}
	c.HandleRune('+')
	if g.Clock.Scale() != 2 {
		t.Errorf("Expected speed x2, got %v", g.Clock.Scale())
	}
	c.HandleRune('p')
	if !g.Clock.Paused() {
		t.Error("Expected 'p' to pause")
	}
}

func TestViewLogKeepsLastEntries(t *testing.T) {
	v := NewView(config.MapSize)
	for i := 1; i <= maxLog+3; i++ {
		v.OnWaveStarted(i)
	}
	if len(v.Log()) != maxLog {
		t.Fatalf("Expected %d entries, got %d", maxLog, len(v.Log()))
	}
	if v.Log()[0] != "Wave 4 started" {
		t.Errorf("Expected oldest kept entry to be wave 4, got %q", v.Log()[0])
	}
}

func TestGlyphs(t *testing.T) {
	tests := []struct {
		view app.StructureView
		want rune
	}{
		{app.StructureView{Key: "HQ", Kind: defs.KindCore}, '@'},
		{app.StructureView{Key: "WALL", Kind: defs.KindWall}, '#'},
		{app.StructureView{Key: "CANNON", Kind: defs.KindTower}, 'C'},
		{app.StructureView{Key: "GOLD_MINE", Kind: defs.KindEconomy}, 'G'},
	}
	for _, tt := range tests {
		if got := glyphFor(tt.view); got != tt.want {
			t.Errorf("glyphFor(%s): Expected %q, got %q", tt.view.Key, tt.want, got)
		}
	}
}
