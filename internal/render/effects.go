// internal/render/effects.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-siege-defense/internal/config"
	"go-siege-defense/internal/event"
	"go-siege-defense/internal/interfaces"
)

type effect struct {
	kind     string
	x, y     float64
	age      float64
	duration float64
}

// EffectLayer хранит короткоживущие визуальные эффекты (вспышки, взрывы).
// Эффекты живут только в представлении и не влияют на симуляцию.
type EffectLayer struct {
	interfaces.NopPresenter
	effects []effect
}

func NewEffectLayer() *EffectLayer {
	return &EffectLayer{}
}

// PlayEffect реализует interfaces.Presenter.
func (l *EffectLayer) PlayEffect(kind string, x, y float64) {
	duration := config.EffectDuration
	switch kind {
	case event.EffectExplosion:
		duration *= 1.5
	case event.EffectMuzzle, event.EffectHit:
		duration *= 0.5
	}
	l.effects = append(l.effects, effect{kind: kind, x: x, y: y, duration: duration})
}

// Update обновляет таймеры эффектов и удаляет завершившиеся.
func (l *EffectLayer) Update(deltaTime float64) {
	kept := l.effects[:0]
	for _, e := range l.effects {
		e.age += deltaTime
		if e.age < e.duration {
			kept = append(kept, e)
		}
	}
	l.effects = kept
}

func (l *EffectLayer) Len() int { return len(l.effects) }

func (l *EffectLayer) Draw(screen *ebiten.Image) {
	for _, e := range l.effects {
		progress := e.age / e.duration
		base, ok := config.EffectColors[e.kind]
		if !ok {
			base = color.RGBA{255, 255, 255, 255}
		}
		alpha := uint8(255 * (1 - progress))
		c := color.RGBA{R: base.R, G: base.G, B: base.B, A: alpha}

		switch e.kind {
		case event.EffectExplosion:
			radius := float32(10 + 40*progress)
			vector.DrawFilledCircle(screen, float32(e.x), float32(e.y), radius*0.6, c, true)
			vector.StrokeCircle(screen, float32(e.x), float32(e.y), radius, 2, c, true)
		case event.EffectBuild, event.EffectIce:
			radius := float32(8 + 24*progress)
			vector.StrokeCircle(screen, float32(e.x), float32(e.y), radius, 2, c, true)
		default:
			radius := float32(6 * (1 - progress/2))
			vector.DrawFilledCircle(screen, float32(e.x), float32(e.y), radius, c, true)
		}
	}
}
