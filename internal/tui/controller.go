// internal/tui/controller.go
package tui

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/pkg/isogrid"
)

// Controller переводит нажатия клавиш в намерения игрока.
type Controller struct {
	game      *app.Game
	buildKeys []string
	Cursor    isogrid.Cell
	speedIdx  int
}

func NewController(game *app.Game) *Controller {
	return &Controller{
		game:      game,
		buildKeys: game.Catalog.BuildKeys(),
		Cursor:    isogrid.Cell{Col: config.MapSize / 2, Row: config.MapSize/2 + 2},
	}
}

// HandleEvent returns false when the player asked to quit.
func (c *Controller) HandleEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyRune {
		return c.HandleRune(ev.Rune())
	}
	return c.HandleKey(ev.Key())
}

func (c *Controller) HandleKey(k tcell.Key) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		c.moveCursor(0, -1)
	case tcell.KeyDown:
		c.moveCursor(0, 1)
	case tcell.KeyLeft:
		c.moveCursor(-1, 0)
	case tcell.KeyRight:
		c.moveCursor(1, 0)
	case tcell.KeyEnter:
		c.activate()
	}
	return true
}

func (c *Controller) HandleRune(r rune) bool {
	switch {
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(c.buildKeys) {
			c.game.SetBuildMode(c.buildKeys[i])
		}
		return true
	case r == ' ':
		if c.game.Phase() == component.PhaseBuilding {
			c.game.StartWaveNow()
		}
		return true
	}

	switch unicode.ToLower(r) {
	case 'u':
		c.game.UpgradeSelected()
	case 's':
		c.game.SellSelected()
	case 'x':
		c.game.Deselect()
	case 'p':
		c.game.TogglePause()
	case '+', '=':
		c.cycleSpeed()
	case 'h':
		c.moveCursor(-1, 0)
	case 'j':
		c.moveCursor(0, 1)
	case 'k':
		c.moveCursor(0, -1)
	case 'l':
		c.moveCursor(1, 0)
	default:
		c.castByHotkey(r)
	}
	return true
}

func (c *Controller) castByHotkey(r rune) {
	for _, spell := range c.game.Catalog.Spells {
		if strings.EqualFold(spell.Hotkey, string(r)) {
			c.game.CastSpell(spell.ID)
			return
		}
	}
}

func (c *Controller) cycleSpeed() {
	c.speedIdx = (c.speedIdx + 1) % len(config.SpeedMultipliers)
	c.game.SetSpeed(config.SpeedMultipliers[c.speedIdx])
}

func (c *Controller) moveCursor(dc, dr int) {
	next := isogrid.Cell{Col: c.Cursor.Col + dc, Row: c.Cursor.Row + dr}
	if next.InBounds(config.MapSize) {
		c.Cursor = next
	}
}

// activate: по строению - выбор, по пустой клетке - постройка.
func (c *Controller) activate() {
	if c.game.SelectStructureAt(c.Cursor.Col, c.Cursor.Row) {
		return
	}
	if result := c.game.PlaceBuildingAt(c.Cursor.Col, c.Cursor.Row); result != app.PlaceOK {
		c.game.Logger().Printf("place %s at %v: %s", c.game.BuildMode(), c.Cursor, result)
	}
}
