// internal/render/entities.go
package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-siege-defense/internal/app"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/defs"
	"go-siege-defense/internal/utils"
	pkgrender "go-siege-defense/pkg/render"
)

// высота блока строения по виду, в пикселях
var blockHeights = map[defs.StructureKind]float64{
	defs.KindCore:    36,
	defs.KindTower:   28,
	defs.KindWall:    14,
	defs.KindEconomy: 20,
}

// EntityRenderer рисует снимок мира: строения, юнитов, снаряды.
type EntityRenderer struct {
	iso *pkgrender.IsoRenderer
}

func NewEntityRenderer(iso *pkgrender.IsoRenderer) *EntityRenderer {
	return &EntityRenderer{iso: iso}
}

// Draw рисует сущности. Строения - по экранному Y, дальние раньше ближних.
func (r *EntityRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	structures := make([]app.StructureView, len(snap.Structures))
	copy(structures, snap.Structures)
	sortByY(structures)

	for _, s := range structures {
		r.drawStructure(screen, s, s.ID == snap.Selected)
	}
	for _, u := range snap.Units {
		r.drawUnit(screen, u)
	}
	for _, p := range snap.Projectiles {
		radius := float32(config.ProjectileRadius)
		if p.IsAoE {
			radius *= 1.5
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, p.Color, true)
	}
}

func (r *EntityRenderer) drawStructure(screen *ebiten.Image, s app.StructureView, selected bool) {
	h := blockHeights[s.Kind]
	tint := s.Tint
	if s.Buffed {
		tint = config.BuffedTint
	}
	if s.Flash {
		tint = config.DamageFlashColor
	}
	halfW := config.TileWidth / 2 * 0.8
	halfH := config.TileHeight / 2 * 0.8

	// Левая и правая грани
	left := [4][2]float64{{s.X - halfW, s.Y}, {s.X, s.Y + halfH}, {s.X, s.Y + halfH - h}, {s.X - halfW, s.Y - h}}
	right := [4][2]float64{{s.X + halfW, s.Y}, {s.X, s.Y + halfH}, {s.X, s.Y + halfH - h}, {s.X + halfW, s.Y - h}}
	r.iso.FillQuad(screen, left, pkgrender.ScaleColor(tint, 0.6))
	r.iso.FillQuad(screen, right, pkgrender.ScaleColor(tint, 0.8))
	r.iso.FillDiamond(screen, s.X, s.Y-h, halfW, halfH, tint)

	if selected {
		vector.StrokeCircle(screen, float32(s.X), float32(s.Y-h), float32(halfW+4), 2, config.SelectionColor, true)
	}
	for lvl := 1; lvl < s.Level; lvl++ {
		px := float32(s.X - halfW + float64(lvl)*6)
		vector.DrawFilledRect(screen, px, float32(s.Y-h-halfH-8), 4, 4, config.TextGoldColor, true)
	}
	if s.MaxHealth > 0 && s.Health < s.MaxHealth {
		drawHealthBar(screen, s.X, s.Y-h-halfH-4, float64(s.Health)/float64(s.MaxHealth))
	}
}

func (r *EntityRenderer) drawUnit(screen *ebiten.Image, u app.UnitView) {
	scale := u.Scale
	if scale <= 0 {
		scale = 1
	}
	radius := config.UnitRadius * scale
	c := u.Color
	switch {
	case u.Flash:
		c = config.DamageFlashColor
	case u.Slowed:
		c = blend(c, config.SlowedTint, 0.5)
	}
	cy := u.Y - radius
	vector.DrawFilledCircle(screen, float32(u.X), float32(u.Y), float32(radius*0.9), color.RGBA{0, 0, 0, 80}, true) // тень
	vector.DrawFilledCircle(screen, float32(u.X), float32(cy), float32(radius), c, true)
	if u.Stunned {
		vector.StrokeCircle(screen, float32(u.X), float32(cy), float32(radius+3), 1, config.TextGoldColor, true)
	}
	if u.Burning {
		vector.StrokeCircle(screen, float32(u.X), float32(cy), float32(radius+1), 2, config.EffectColors["EXPLOSION"], true)
	}
	if u.MaxHealth > 0 {
		drawHealthBar(screen, u.X, cy-radius-6, float64(u.Health)/float64(u.MaxHealth))
	}
}

func drawHealthBar(screen *ebiten.Image, cx, y, fraction float64) {
	fraction = utils.Clamp01(fraction)
	w, h := float32(config.HealthBarWidth), float32(config.HealthBarHeight)
	x := float32(cx) - w/2
	c := config.HealthHighColor
	switch {
	case fraction < 0.3:
		c = config.HealthLowColor
	case fraction < 0.6:
		c = config.HealthMidColor
	}
	vector.DrawFilledRect(screen, x, float32(y), w, h, color.RGBA{0, 0, 0, 160}, true)
	vector.DrawFilledRect(screen, x, float32(y), w*float32(fraction), h, c, true)
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x)*(1-t) + float64(y)*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: a.A}
}

func sortByY(views []app.StructureView) {
	sort.SliceStable(views, func(i, j int) bool { return views[i].Y < views[j].Y })
}
