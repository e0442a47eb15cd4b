// internal/tui/view.go
package tui

import (
	"fmt"
	"image/color"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/interfaces"
	"go-siege-defense/pkg/isogrid"
)

const (
	mapLeft    = 1
	mapTop     = 1
	cellWidth  = 2 // две колонки терминала на клетку, чтобы карта не была сплюснутой
	sidebarGap = 3
	maxLog     = 6
)

var (
	styleDefault = tcell.StyleDefault
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleSpawn   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleGold    = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleMana    = tcell.StyleDefault.Foreground(tcell.ColorMediumPurple)
	styleLives   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// View рисует снимок мира в терминале: карта сверху вниз и боковая панель.
// Заодно собирает короткий журнал событий как Presenter.
type View struct {
	interfaces.NopPresenter
	mapSize int
	log     []string
}

func NewView(mapSize int) *View {
	return &View{mapSize: mapSize}
}

func (v *View) push(msg string) {
	v.log = append(v.log, msg)
	if len(v.log) > maxLog {
		v.log = v.log[len(v.log)-maxLog:]
	}
}

func (v *View) OnWaveStarted(n int) { v.push(fmt.Sprintf("Wave %d started", n)) }
func (v *View) OnVictory(n int)     { v.push(fmt.Sprintf("Victory after wave %d", n)) }
func (v *View) OnDefeat()           { v.push("The core has fallen") }
func (v *View) OnPhaseChanged(p component.Phase) {
	if p == component.PhaseBuilding {
		v.push("Build phase")
	}
}
func (v *View) OnSpellCast(id string, ok bool) {
	if ok {
		v.push(id + " cast")
	}
}

// Log возвращает журнал, старые записи первыми.
func (v *View) Log() []string { return v.log }

// CellOrigin - экранная позиция левого символа клетки.
func CellOrigin(c isogrid.Cell) (x, y int) {
	return mapLeft + c.Col*cellWidth, mapTop + c.Row
}

func glyphFor(s app.StructureView) rune {
	switch s.Kind {
	case defs.KindCore:
		return '@'
	case defs.KindWall:
		return '#'
	}
	if s.Key == "" {
		return '?'
	}
	return rune(s.Key[0])
}

func unitGlyph(u app.UnitView) rune {
	if u.Archetype == "" {
		return 'o'
	}
	return unicode.ToLower(rune(u.Archetype[0]))
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// Draw перерисовывает весь экран. cursor - клетка под курсором.
func (v *View) Draw(screen tcell.Screen, snap *app.Snapshot, projection isogrid.Projection, cursor isogrid.Cell) {
	screen.Clear()

	for row := 0; row < v.mapSize; row++ {
		for col := 0; col < v.mapSize; col++ {
			x, y := CellOrigin(isogrid.Cell{Col: col, Row: row})
			style := styleEmpty
			if col == config.SpawnCol && row == config.SpawnRow {
				style = styleSpawn
			}
			screen.SetContent(x, y, '.', nil, style)
		}
	}

	for _, s := range snap.Structures {
		x, y := CellOrigin(s.Cell)
		style := styleDefault.Foreground(tcellColor(s.Tint))
		if s.Flash {
			style = style.Background(tcell.ColorDarkRed)
		}
		if s.ID == snap.Selected {
			style = style.Underline(true)
		}
		screen.SetContent(x, y, glyphFor(s), nil, style)
		if s.Level > 1 {
			screen.SetContent(x+1, y, rune('0'+s.Level%10), nil, styleDim)
		}
	}

	for _, u := range snap.Units {
		cell := projection.WorldToGrid(u.X, u.Y)
		if !cell.InBounds(v.mapSize) {
			continue
		}
		x, y := CellOrigin(cell)
		style := styleDefault.Foreground(tcellColor(u.Color)).Bold(true)
		switch {
		case u.Stunned:
			style = style.Background(tcell.ColorYellow)
		case u.Slowed:
			style = style.Background(tcell.ColorNavy)
		case u.Burning:
			style = style.Background(tcell.ColorMaroon)
		}
		screen.SetContent(x+1, y, unitGlyph(u), nil, style)
	}

	if cursor.InBounds(v.mapSize) {
		x, y := CellOrigin(cursor)
		mainc, _, style, _ := screen.GetContent(x, y)
		screen.SetContent(x, y, mainc, nil, style.Reverse(true))
	}

	v.drawSidebar(screen, snap)
	screen.Show()
}

func (v *View) drawSidebar(screen tcell.Screen, snap *app.Snapshot) {
	x := mapLeft + v.mapSize*cellWidth + sidebarGap
	y := mapTop

	line := func(s string, style tcell.Style) {
		drawText(screen, x, y, s, style)
		y++
	}

	line(fmt.Sprintf("Gold  %d", snap.Stats.Gold), styleGold)
	line(fmt.Sprintf("Mana  %d", snap.Stats.Mana), styleMana)
	line(fmt.Sprintf("Lives %d", snap.Stats.Lives), styleLives)
	y++

	phase := "WAVE"
	if snap.Phase == component.PhaseBuilding {
		phase = fmt.Sprintf("BUILD %ds", snap.TimeLeft)
	}
	line(fmt.Sprintf("Wave %d/%d  %s", snap.WaveNumber, snap.TotalWaves, phase), styleDefault)
	speed := fmt.Sprintf("Speed x%.0f", snap.Speed)
	if snap.Paused {
		speed += "  PAUSED"
	}
	line(speed, styleDefault)
	line("Build "+snap.BuildKey, styleDefault)
	y++

	for _, s := range snap.Spells {
		style := styleDefault
		if !s.Ready || snap.Stats.Mana < s.Cost {
			style = styleDim
		}
		line(fmt.Sprintf("[%s] %-10s %3d  %3.0f%%", s.Hotkey, s.Name, s.Cost, s.Progress*100), style)
	}
	y++

	for _, msg := range v.log {
		line(msg, styleDim)
	}

	if snap.Victory || snap.Defeat {
		y++
		if snap.Victory {
			line("VICTORY  (Esc to quit)", styleGold)
		} else {
			line("DEFEAT  (Esc to quit)", styleLives)
		}
	}
}

// DrawSelection выводит характеристики выбранного строения под картой.
func DrawSelection(screen tcell.Screen, mapSize int, stats interfaces.TowerStats) {
	y := mapTop + mapSize + 1
	drawText(screen, mapLeft, y, fmt.Sprintf("%s lvl %d  HP %d/%d", stats.Name, stats.Level, stats.Health, stats.MaxHealth), styleDefault)
	details := ""
	if stats.Damage > 0 {
		details = fmt.Sprintf("dmg %d  range %.0f  cd %dms  ", stats.Damage, stats.Range, stats.CooldownMs)
	}
	if stats.Upgradable {
		details += fmt.Sprintf("[u] upgrade %d  ", stats.UpgradeCost)
	}
	if stats.Sellable {
		details += fmt.Sprintf("[s] sell +%d", stats.SellValue)
	}
	drawText(screen, mapLeft, y+1, details, styleDim)
	screen.Show()
}
